package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/screenkeep/internal/engine"
)

var (
	restoreProfile string
	restoreDryRun  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a saved output layout",
	Long: `Apply a saved layout to the connected outputs.

Each output is matched to its saved entry by make, model and serial number,
whatever port it is plugged into now. Outputs without a saved entry are left
alone, as are heads excluded by a closed lid. Outputs already in their saved
mode are not touched, so running restore twice is harmless.

Without --profile, the profile saved for exactly the connected set of
displays is used (see 'save --auto'), falling back to "default".

If the compositor rejects one output the others are still restored and the
command exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Restore(context.Background(), &engine.RestoreRequest{
			Profile: restoreProfile,
			DryRun:  restoreDryRun,
		})
		if result == nil {
			return err
		}

		if jsonOutput {
			if jsonErr := outputJSON(result); jsonErr != nil {
				return jsonErr
			}
			return err
		}

		for _, w := range result.Warnings {
			PrintWarning(w)
		}
		if result.AutoSelected {
			PrintInfo(fmt.Sprintf("Using profile %q saved for the connected displays", result.Profile))
		}

		if result.DryRun {
			PrintSection(fmt.Sprintf("Dry Run: profile %q", result.Profile))
			PrintPlan(result.Plan)
			return nil
		}

		PrintPlan(result.Plan)
		fmt.Println()
		for _, f := range result.Failed {
			PrintError(fmt.Sprintf("%s: %s", f.Action.Output, f.Error))
		}

		summary := fmt.Sprintf("Restored %s, %d unchanged",
			PrintCount(len(result.Applied), "output", "outputs"), len(result.Unchanged))
		if len(result.Failed) > 0 {
			PrintWarning(fmt.Sprintf("%s, %d failed", summary, len(result.Failed)))
		} else {
			PrintSuccess(summary)
		}
		return err
	},
}

func init() {
	restoreCmd.Flags().StringVarP(&restoreProfile, "profile", "p", "", "Profile to restore (default: match connected displays, then \"default\")")
	restoreCmd.Flags().BoolVar(&restoreDryRun, "dry-run", false, "Show the restore plan without applying it")
}
