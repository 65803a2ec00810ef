package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jugandoyeducando/marketmaster"
	"github.com/jugandoyeducando/marketmaster/internal/config"
	"github.com/jugandoyeducando/marketmaster/pkg/logging"
	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
)

var (
	reconcilePlatform  string
	reconcileInput     string
	reconcileERP       string
	reconcileOutput    string
	reconcileOverrides string
)

// reconcileCmd runs one reconciliation for one platform.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a marketplace export against the ERP extract",
	Long: `Reconcile one marketplace export file against the ERP extract and
write the updated export.

Falabella ships two artifacts per update; run the falabella-price and
falabella-inventory platforms once each.`,
	Example: `  marketmaster reconcile -p meli-medellin -i publicaciones.xlsx -e erp.csv -o actualizado.xlsx
  marketmaster reconcile -p wix -i catalogo.csv -e erp.csv -o wix_modificado.csv`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVarP(&reconcilePlatform, "platform", "p", "", "platform id ("+strings.Join(platforms.IDs(), ", ")+")")
	reconcileCmd.Flags().StringVarP(&reconcileInput, "input", "i", "", "marketplace export file")
	reconcileCmd.Flags().StringVarP(&reconcileERP, "erp", "e", "", "ERP extract file (semicolon-separated, Latin-1)")
	reconcileCmd.Flags().StringVarP(&reconcileOutput, "output", "o", "", "output file")
	reconcileCmd.Flags().StringVar(&reconcileOverrides, "platforms-file", "", "YAML file with deployment overrides")

	for _, flag := range []string{"platform", "input", "erp", "output"} {
		if err := reconcileCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("Failed to mark %s flag required: %v", flag, err))
		}
	}
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	opts := []marketmaster.Option{
		marketmaster.WithLogger(*logging.Default()),
	}
	if reconcileOverrides == "" {
		// A standing overrides file can come from config or environment
		// (MARKETMASTER_PLATFORMS_FILE) instead of the flag.
		reconcileOverrides = config.GetString("platforms_file")
	}
	if reconcileOverrides != "" {
		opts = append(opts, marketmaster.WithOverridesFile(reconcileOverrides))
	}

	result, err := marketmaster.Run(cmd.Context(), marketmaster.RunSpec{
		Platform:   reconcilePlatform,
		InputPath:  reconcileInput,
		ERPPath:    reconcileERP,
		OutputPath: reconcileOutput,
	}, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	fmt.Printf("Reconciled %d rows (%d matched, %d unmatched) against %d ERP records\n",
		result.Stats.Rows, result.Stats.Matched, result.Stats.Unmatched, result.Records)
	for _, artifact := range result.Artifacts {
		fmt.Printf("Wrote %s\n", artifact)
	}
	return nil
}
