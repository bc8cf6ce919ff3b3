package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBenchmarkCmd(s *settings) *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "benchmark <category>",
		Short: "Show the industry-average score for a category",
		Long:  "Look up the static industry-average total score for a business category. Unknown categories fall back to the default entry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := s.auditService(cmd).Benchmark(s.configDir(), args[0], city)
			if err != nil {
				return fmt.Errorf("benchmark lookup failed: %w", err)
			}
			return renderJSON(cmd, b)
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "City echoed in the benchmark record")

	return cmd
}
