package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved layout profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.ListProfiles(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Profiles) == 0 {
			PrintEmptyState("No saved profiles (run 'screenkeep save')")
			return nil
		}
		PrintList(result.Profiles, 0)
		return nil
	},
}
