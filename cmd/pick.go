package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quinnoshea/claude-builder/internal/config"
	"github.com/quinnoshea/claude-builder/internal/generator"
	"github.com/quinnoshea/claude-builder/internal/logging"
	"github.com/quinnoshea/claude-builder/internal/render"
	"github.com/quinnoshea/claude-builder/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [path]",
	Short: "Interactive document picker",
	Long: `Opens an interactive TUI for choosing which guidance documents to
generate.

Use arrow keys or j/k to navigate, / to filter.

Actions:
  Space  - Toggle document selection
  a      - Select all documents
  Enter  - Generate selected (or highlighted) documents
  q/Esc  - Quit without generating`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	logging.Debug("picker mode started", "root", root)

	catalog, err := render.LoadCatalog(templatesDir(root, cfg))
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	docs := catalog.List()
	if len(docs) == 0 {
		logInfo("No document templates found.")
		return nil
	}

	result, err := tui.RunPicker(docs)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action, "documents", result.Documents)

	switch result.Action {
	case tui.ActionGenerate:
		results, err := generator.New(root, cfg).Run(result.Documents)
		if err != nil {
			return err
		}
		if err := reportResults(results); err != nil {
			return err
		}

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}
