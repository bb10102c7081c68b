package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/runtime"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resolved alias catalog",
	Long: `List the aliases resolved from the configured alias files.

Displays name, safety classification, expansion, and source file in a
table. Collisions between files are already resolved by the availability
heuristic, so each name appears once.`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

func init() {
	registerOverlayFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rt := runtime.New(cfg)
	aliases := rt.ListAliases()
	if len(aliases) == 0 {
		fmt.Println("No aliases found.")
		return nil
	}

	renderCatalog(os.Stdout, aliases)
	return nil
}

// renderCatalog writes the catalog as an aligned table.
func renderCatalog(w io.Writer, aliases []catalog.Alias) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSAFE\tEXPANSION\tSOURCE")
	for _, a := range aliases {
		safe := "no"
		if a.Safe {
			safe = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, safe, a.Expansion, a.SourceFile)
	}
	_ = tw.Flush()
}
