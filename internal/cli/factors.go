package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newFactorsCmd creates the "factors" subcommand, which prints the emission
// factors loaded for a category. Useful for discovering valid keys and for
// auditing a customized factor file.
func newFactorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors <category>",
		Short: "Show the emission factors for a category",
		Example: `  carbontrack factors transportation
  carbontrack factors waste --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			group := a.calculator.CategoryFactors(category)
			if group == nil {
				return fmt.Errorf("unknown category %q (expected transportation, energy, food, consumption, or waste)", category)
			}

			format, _ := cmd.Flags().GetString("output")
			if format == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(group)
			}

			subcategories := make([]string, 0, len(group))
			for name := range group {
				subcategories = append(subcategories, name)
			}
			sort.Strings(subcategories)

			for _, subcategory := range subcategories {
				cmd.Println(titleStyle.Render(subcategory))

				keys := make([]string, 0, len(group[subcategory]))
				for key := range group[subcategory] {
					keys = append(keys, key)
				}
				sort.Strings(keys)

				for _, key := range keys {
					cmd.Printf("  %-20s %v\n", key, group[subcategory][key])
				}
			}
			return nil
		},
	}

	return cmd
}
