package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/tui"
	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/bewertigo/bewertigo/internal/domain"
)

const (
	formatTUI   = "tui"
	formatJSON  = "json"
	formatTable = "table"
	formatBadge = "badge"
)

func newAuditCmd(s *settings) *cobra.Command {
	var (
		jsonOutput bool
		format     string
		city       string
		ciMode     bool
		minScore   float64
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "audit <input-file>",
		Short: "Score a business's online presence",
		Long:  "Score the audit input file (JSON or YAML) and print the total score, module scores and the eight most damaging issues.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				format = formatJSON
			}
			switch format {
			case formatTUI, formatJSON, formatTable, formatBadge:
			default:
				return fmt.Errorf("unknown format %q (valid: tui, json, table, badge)", format)
			}

			report, err := s.auditService(cmd).AuditFile(args[0], s.configDir(), city)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if save {
				if _, err := s.historyService(cmd).Record(s.configDir(), report, time.Now()); err != nil {
					return err
				}
			}

			switch format {
			case formatJSON:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case formatTable:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderTable(report))
			case formatBadge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode {
				return application.CheckGate(report, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON (same as --format json)")
	cmd.Flags().StringVar(&format, "format", formatTUI, "Output format: tui, json, table, badge")
	cmd.Flags().StringVar(&city, "city", "", "Override the city in the input file")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min or a configured module threshold")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum total score for CI mode")
	cmd.Flags().BoolVar(&save, "save", false, "Append the result to the audit history in the config directory")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, report *application.AuditReport) {
	total := report.Result.TotalScore
	url := fmt.Sprintf("https://img.shields.io/badge/bewertigo-%.1f%%2F100-%s", total, domain.BadgeColor(total))
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
