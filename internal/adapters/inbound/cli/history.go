package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/tui"
)

func newHistoryCmd(s *settings) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history [business]",
		Short: "Show saved audit scores over time",
		Long:  "List audits saved with 'bewertigo audit --save', oldest first, optionally for a single business.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var business string
			if len(args) > 0 {
				business = args[0]
			}

			records, err := s.historyService(cmd).Trend(s.configDir(), business)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, records)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
