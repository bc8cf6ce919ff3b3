package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/config"
	"github.com/bewertigo/bewertigo/internal/adapters/outbound/history"
	"github.com/bewertigo/bewertigo/internal/adapters/outbound/input"
	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/bewertigo/bewertigo/internal/observability"
)

var (
	version = "dev"
	commit  = "none"
)

// EnvPrefix is the prefix of environment variables that mirror global flags,
// e.g. BEWERTIGO_VERBOSE and BEWERTIGO_CONFIG.
const EnvPrefix = "BEWERTIGO"

// settings carries the global flags, resolved through viper so that the
// environment can supply them too.
type settings struct {
	v *viper.Viper
}

func (s *settings) configDir() string {
	if dir := s.v.GetString("config"); dir != "" {
		return dir
	}
	return "."
}

func (s *settings) verbose() bool {
	return s.v.GetBool("verbose")
}

func (s *settings) logger(w io.Writer) *zap.Logger {
	return observability.NewCLILogger(w, s.verbose())
}

func (s *settings) auditService(cmd *cobra.Command) *application.AuditService {
	return application.NewAuditService(input.New(), config.New(), s.logger(cmd.ErrOrStderr()))
}

func (s *settings) historyService(cmd *cobra.Command) *application.HistoryService {
	return application.NewHistoryService(history.New(), s.logger(cmd.ErrOrStderr()))
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	s := &settings{v: v}

	cmd := &cobra.Command{
		Use:           "bewertigo",
		Short:         "Online presence health score for local businesses",
		Long:          "Bewertigo scores a local business's online presence across six modules and ranks the issues that cost it the most customers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (debug logging on stderr)")
	cmd.PersistentFlags().String("config", "", "Directory containing "+config.FileName+" (default: current directory)")
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd(s))
	cmd.AddCommand(newBenchmarkCmd(s))
	cmd.AddCommand(newValidateCmd(s))
	cmd.AddCommand(newHistoryCmd(s))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(s))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
