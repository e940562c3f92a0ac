package cmd

import (
	"path/filepath"

	"github.com/quinnoshea/claude-builder/internal/config"
	builderrors "github.com/quinnoshea/claude-builder/internal/errors"
	"github.com/quinnoshea/claude-builder/internal/generator"
)

// templatesDir resolves the configured templates directory against the
// project root.
func templatesDir(root string, cfg *config.Config) string {
	if cfg.TemplatesDir == "" || filepath.IsAbs(cfg.TemplatesDir) {
		return cfg.TemplatesDir
	}
	return filepath.Join(root, cfg.TemplatesDir)
}

// reportResults prints per-document outcomes and returns an error
// carrying the first failure's exit code, if any document failed.
func reportResults(results []generator.Result) error {
	var failed error
	for _, res := range results {
		if res.Err != nil {
			logError("%s", generator.Describe(res))
			if failed == nil {
				failed = res.Err
			}
			continue
		}
		logSuccess("Generated %s (%d tool sections)", res.Path, len(res.Tools))
	}

	if failed != nil {
		return builderrors.Wrap(builderrors.GetExitCode(failed), "some documents failed to generate", failed)
	}
	return nil
}
