package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bewertigo/bewertigo/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".bewertigo.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .bewertigo.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .bewertigo.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.AuditConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.AuditConfig{}, err
	}

	var cfg domain.AuditConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// Template is the commented starter config written by `bewertigo init`.
const Template = `# bewertigo configuration
#
# default_city is used when an audit input has no city.
# default_city: Wien
#
# benchmarks overrides or extends the built-in industry averages (0-100).
# Keys are category labels; spaces and case are normalized.
# benchmarks:
#   restaurant: 77
#   tattoo studio: 66
#
# min_thresholds fails 'bewertigo audit --ci' when a module scores below
# the given points. Every module is worth 16.6 points.
# min_thresholds:
#   reviewSentiment: 10
#   mobileExperience: 8
`
