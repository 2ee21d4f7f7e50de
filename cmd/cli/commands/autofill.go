package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AutofillCmd creates the autofill command
func AutofillCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "autofill",
		Short: "Fill every open cell in every stored duty list",
		Long: `Fill every open cell in every stored duty list.

Lists are processed in chronological order and cells that already hold a
trainee number are left untouched, so the command is safe to re-run after
manual edits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Registry.AutofillAll(app.Cfg.OffShipNumbers)
			if saveErr := app.Save(); saveErr != nil {
				return saveErr
			}
			if err != nil {
				fmt.Printf("\n⚠️  Autofill finished with gaps: %v\n\n", err)
				return nil
			}

			fmt.Printf("\n✓ Autofill completed over %d duty lists.\n\n", len(app.Registry.Lists))
			return nil
		},
	}
}
