package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quinnoshea/claude-builder/internal/config"
	"github.com/quinnoshea/claude-builder/internal/generator"
	"github.com/quinnoshea/claude-builder/internal/logging"
)

var (
	generateDocs   []string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate guidance documents for a project",
	Long: `Analyzes the project and renders the configured guidance documents
into the output directory (docs/guidance by default). Each document is
rendered independently, so a broken user template fails that document
without blocking the others.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVarP(&generateDocs, "document", "d", nil, "Documents to generate (default: configured set)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if generateOutput != "" {
		cfg.OutputDir = generateOutput
	}

	logging.Debug("generating documents", "root", root, "documents", generateDocs)

	results, err := generator.New(root, cfg).Run(generateDocs)
	if err != nil {
		return err
	}

	return reportResults(results)
}
