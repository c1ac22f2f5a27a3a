package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/screenkeep/internal/engine"
	"github.com/danieljhkim/screenkeep/internal/hash"
)

var infoProfile string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show connected outputs and their identities",
	Long: `List the connected outputs with the identity key screenkeep matches them by,
whether the profile has a saved entry for each, and which heads a closed lid
currently excludes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Info(context.Background(), &engine.InfoRequest{Profile: infoProfile})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, w := range result.Warnings {
			PrintWarning(w)
		}

		PrintSection("Outputs")
		if len(result.Heads) == 0 {
			PrintEmptyState("No outputs connected")
		}
		rows := make([][]string, 0, len(result.Heads))
		for _, h := range result.Heads {
			rows = append(rows, []string{h.Name, h.Key, h.Mode.String(), headFlags(h)})
		}
		PrintTable([]string{"OUTPUT", "IDENTITY", "MODE", "NOTES"}, rows)

		PrintSection(fmt.Sprintf("Profile %q", result.Profile))
		PrintLabelValue("Backend", result.Backend)
		PrintLabelValue("Store", result.StorePath)
		PrintLabelValue("Fingerprint", hash.Short(result.Fingerprint))
		switch {
		case result.SavedAt == nil:
			PrintLabelValueWithColor("Saved", "never", warningColor)
		case result.Matches():
			PrintLabelValue("Saved", result.SavedAt.Local().Format(time.RFC3339))
			PrintLabelValueWithColor("Layout", "matches connected outputs", successColor)
		default:
			PrintLabelValue("Saved", result.SavedAt.Local().Format(time.RFC3339))
			PrintLabelValueWithColor("Layout", "saved for a different set of outputs", warningColor)
		}
		return nil
	},
}

func headFlags(h engine.HeadInfo) string {
	var notes []string
	if h.Saved {
		notes = append(notes, "saved")
	}
	if h.Fallback {
		notes = append(notes, "no serial")
	}
	if h.LidClosed {
		notes = append(notes, "lid closed")
	}
	if len(notes) == 0 {
		return "-"
	}
	return strings.Join(notes, ", ")
}

func init() {
	infoCmd.Flags().StringVarP(&infoProfile, "profile", "p", engine.DefaultProfile, "Profile to compare against")
}
