package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/screenkeep/internal/engine"
)

var (
	saveProfile string
	saveDryRun  bool
	saveAuto    bool
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current output layout",
	Long: `Capture the mode, position, scale and transform of every connected output
and store them under a profile, replacing what was saved before.

Outputs are keyed by make, model and serial number. Disabled outputs and
outputs behind a closed lid are saved too.

With --auto the profile is named after the connected set of displays, so a
home and an office dock each keep their own layout and 'restore' picks the
right one without --profile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Save(context.Background(), &engine.SaveRequest{
			Profile: saveProfile,
			DryRun:  saveDryRun,
			Auto:    saveAuto,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		entries := PrintCount(len(result.Layout.Entries), "output", "outputs")
		if result.DryRun {
			PrintInfo(fmt.Sprintf("Dry run - would save %s to profile %q", entries, result.Profile))
		} else {
			PrintSuccess(fmt.Sprintf("Saved %s to profile %q", entries, result.Profile))
			PrintLabelValue("Path", result.Path)
		}

		rows := make([][]string, 0, len(result.Layout.Entries))
		for _, e := range result.Layout.Entries {
			rows = append(rows, []string{e.Name, e.Identity().Key(), e.Mode.String()})
		}
		fmt.Println()
		PrintTable([]string{"OUTPUT", "IDENTITY", "MODE"}, rows)

		for _, name := range result.Fallback {
			PrintWarning(fmt.Sprintf("%s reports no serial number; it is matched by make and model only", name))
		}
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveProfile, "profile", "p", engine.DefaultProfile, "Profile to save to")
	saveCmd.Flags().BoolVar(&saveDryRun, "dry-run", false, "Show what would be saved without saving")
	saveCmd.Flags().BoolVar(&saveAuto, "auto", false, "Name the profile after the connected displays")
	saveCmd.MarkFlagsMutuallyExclusive("profile", "auto")
}
