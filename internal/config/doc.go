// Package config provides configuration loading for claude-builder.
//
// Settings are read from an optional claude-builder.toml in the analyzed
// project's root:
//
//	output_dir = "docs/guidance"
//	templates_dir = ".claude-builder/templates"
//	documents = ["devops", "mlops"]
//	exclude_dirs = ["fixtures"]
//	max_files_per_tool = 5
//	git_exclude = true
//
// A missing file yields the defaults; a malformed file is a hard error so
// that typos never silently change what gets generated.
package config
