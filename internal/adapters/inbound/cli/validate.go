package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/input"
)

func newValidateCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Check an audit input file without scoring it",
		Long:  "Decode and validate an audit input file. Unknown fields, ratings outside 0-5 and negative counts are rejected.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := s.logger(cmd.ErrOrStderr())
			in, err := input.New().Load(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			log.Debug("input decoded")
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %s (%d competitors)\n", in.Business.Name, len(in.Competitors))
			return nil
		},
	}
}
