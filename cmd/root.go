package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quinnoshea/claude-builder/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "claude-builder",
	Short: "Project tooling detection and guidance document generator",
	Long: `claude-builder inspects a project tree for DevOps and MLOps tooling
and generates Markdown guidance documents tailored to what it finds.

Detection is file-based: directories, globs, and well-known config files
score each tool, and documents only include sections for tools that are
actually present.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs and results in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logError   = logging.UserError
	_          = logging.UserWarning // reserved for future use
)

// projectRoot resolves the optional positional path argument to an
// absolute project root, defaulting to the current directory.
func projectRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return filepath.Abs(root)
}
