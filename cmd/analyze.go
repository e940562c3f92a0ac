package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quinnoshea/claude-builder/internal/config"
	"github.com/quinnoshea/claude-builder/internal/detect"
	"github.com/quinnoshea/claude-builder/internal/generator"
	"github.com/quinnoshea/claude-builder/internal/logging"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Detect DevOps and MLOps tooling in a project",
	Long: `Walks the project tree and scores each known tool by the presence of
its marker directories, globs, and config files. With --json the full
detection profile is printed instead of a table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	logging.Debug("analyzing project", "root", root)

	profile, err := generator.New(root, cfg).Analyze()
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if profile.Len() == 0 {
		logInfo("No known tooling detected in %s", root)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tCATEGORY\tCONFIDENCE\tSCORE\tFILES")
	fmt.Fprintln(w, "----\t--------\t----------\t-----\t-----")

	for _, key := range profile.Keys() {
		det, _ := profile.Lookup(key)
		score := "-"
		if det.Score != nil {
			score = fmt.Sprintf("%.1f", *det.Score)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			det.DisplayName, det.Category, det.Confidence, score, strings.Join(det.Files, ", "))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	summary := profile.Summarize()
	fmt.Println()
	printSummaryGroup("Infrastructure as Code", summary.InfrastructureAsCode)
	printSummaryGroup("Orchestration", summary.OrchestrationTools)
	printSummaryGroup("Secrets management", summary.SecretsManagement)
	printSummaryGroup("Observability", summary.Observability)
	printSummaryGroup("Security", summary.SecurityTools)
	printSummaryGroup("Data pipelines", summary.DataPipeline)
	printSummaryGroup("MLOps", summary.MLOpsTools)

	return nil
}

func printSummaryGroup(label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = detect.DisplayName(key)
	}
	fmt.Printf("%s: %s\n", label, strings.Join(names, ", "))
}
