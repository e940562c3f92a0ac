package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quinnoshea/claude-builder/internal/config"
	"github.com/quinnoshea/claude-builder/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [path]",
	Short: "List available document templates",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	catalog, err := render.LoadCatalog(templatesDir(root, cfg))
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	docs := catalog.List()
	if len(docs) == 0 {
		logInfo("No document templates found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDOMAIN\tSOURCE")
	fmt.Fprintln(w, "----\t-----\t------\t------")

	for _, doc := range docs {
		source := "built-in"
		if !doc.BuiltIn {
			source = "user"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", doc.Name, doc.Title, doc.Domain, source)
	}

	return w.Flush()
}
