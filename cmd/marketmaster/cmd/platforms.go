package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
)

// platformsCmd lists the registered platform adapters.
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the registered platform adapters",
	Run: func(_ *cobra.Command, _ []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tFORMAT\tPOLICY\tWAREHOUSES")
		for _, cfg := range platforms.All() {
			warehouses := strings.Join(cfg.Warehouses, "+")
			if cfg.Policy == platforms.PolicyStore {
				warehouses = "per store"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cfg.ID, cfg.Name, cfg.Format, cfg.Policy, warehouses)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
