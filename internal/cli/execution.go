package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrace/carbontrack/internal/calc"
)

// emit renders a calculation result and applies the save policy:
// --save persists unconditionally, --no-save never persists, and with
// neither flag an interactive terminal is prompted (defaulting to no).
func (a *app) emit(cmd *cobra.Command, result calc.Result) error {
	format, _ := cmd.Flags().GetString("output")
	if err := renderResult(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}

	return a.maybeSave(cmd, result)
}

// maybeSave persists the result according to the save flags and TTY state.
func (a *app) maybeSave(cmd *cobra.Command, result calc.Result) error {
	noSave, _ := cmd.Flags().GetBool("no-save")
	if noSave {
		return nil
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		if !isTerminal(os.Stdin) {
			return nil
		}
		prompt := ConfirmSave(cmd.OutOrStdout(), cmd.InOrStdin())
		if !prompt.Accepted {
			return nil
		}
	}

	id, err := a.store.Save(cmd.Context(), result)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("id", id).
		Str("category", result.Category).
		Str("activity", result.Activity).
		Float64("co2_kg", result.CO2Kg).
		Msg("result saved to history")
	cmd.Printf("Saved with ID %s\n", id)
	return nil
}
