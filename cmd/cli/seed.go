package cli

import (
	"Dinner-For-Five/entities"
	"Dinner-For-Five/pkg/recipe"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load default recipes when the store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var defaults []*entities.Recipe
			if err := json.Unmarshal(data, &defaults); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			_, store, err := openStore(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeStore(store)

			res, err := recipe.NewRecipeService(store.Repository).SeedRecipes(cmd.Context(), defaults)
			if err != nil {
				return err
			}

			out, err := json.Marshal(res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "defaults.json", "JSON array of default recipes")
	return cmd
}
