package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default settings applied when claude-builder.toml is absent or partial.
const (
	DefaultOutputDir       = "docs/guidance"
	DefaultTemplatesDir    = ".claude-builder/templates"
	DefaultMaxFilesPerTool = 5
)

// DefaultDocuments are the built-in documents generated when the config
// does not select a subset.
var DefaultDocuments = []string{"devops", "mlops"}

// Config holds project-level settings loaded from claude-builder.toml.
type Config struct {
	// OutputDir is where generated Markdown documents are written,
	// relative to the project root unless absolute.
	OutputDir string `toml:"output_dir"`

	// TemplatesDir holds user-provided document templates.
	TemplatesDir string `toml:"templates_dir"`

	// Documents selects which catalog documents `generate` renders.
	Documents []string `toml:"documents"`

	// ExcludeDirs are additional directory names skipped during analysis,
	// merged with the built-in ignore list.
	ExcludeDirs []string `toml:"exclude_dirs"`

	// MaxFilesPerTool caps how many representative file paths are
	// captured per detected tool.
	MaxFilesPerTool int `toml:"max_files_per_tool"`

	// GitExclude controls whether generated files are appended to
	// .git/info/exclude after generation.
	GitExclude bool `toml:"git_exclude"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		OutputDir:       DefaultOutputDir,
		TemplatesDir:    DefaultTemplatesDir,
		Documents:       append([]string(nil), DefaultDocuments...),
		MaxFilesPerTool: DefaultMaxFilesPerTool,
		GitExclude:      true,
	}
}

// Load reads claude-builder.toml from the given project directory.
// A missing config file is not an error: defaults are returned so that
// analysis works out of the box. A present but malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "claude-builder.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if c.MaxFilesPerTool < 1 {
		return fmt.Errorf("max_files_per_tool must be at least 1, got %d", c.MaxFilesPerTool)
	}
	if len(c.Documents) == 0 {
		return fmt.Errorf("documents cannot be empty")
	}
	return nil
}
