package global

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
	"github.com/MSS23/vgc-mcp-sub002/vgcdata"
)

// Settings holds everything a frontend can override without recompiling.
type Settings struct {
	// Smogon usage format the tooling points at, e.g. "gen9vgc2026regfbo3".
	UsageFormat string `yaml:"usage_format"`
	// Rating cutoff for usage stats. 0 means all competitive data.
	RatingCutoff int    `yaml:"rating_cutoff"`
	StatsBaseUrl string `yaml:"stats_base_url"`
	DefaultLevel int    `yaml:"default_level"`
	Debug        bool   `yaml:"debug"`
}

// Smogon only publishes stats at these cutoffs.
var ValidRatingCutoffs = []int{0, 1500, 1630, 1760}

func DefaultSettingsDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "vgccalc")
}

func DefaultSettingsLocation() string {
	return filepath.Join(DefaultSettingsDir(), "settings.yaml")
}

func SaveSettings(settings Settings) error {
	yamlBytes, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(DefaultSettingsLocation(), yamlBytes, 0666); err != nil {
		return err
	}

	return nil
}

// ChaosURL builds the usage stats URL for a month given in "YYYY-MM" form.
func (s Settings) ChaosURL(month string) string {
	return vgcdata.ChaosURL(s.StatsBaseUrl, month, s.UsageFormat, s.RatingCutoff)
}

func populateSettings(settings Settings) Settings {
	if settings.UsageFormat == "" {
		settings.UsageFormat = "gen9vgc2026regfbo3"
	}
	if settings.StatsBaseUrl == "" {
		settings.StatsBaseUrl = "https://www.smogon.com/stats"
	}
	if settings.DefaultLevel == 0 {
		settings.DefaultLevel = vgccalc.DEFAULT_LEVEL
	}
	if !lo.Contains(ValidRatingCutoffs, settings.RatingCutoff) {
		settings.RatingCutoff = 0
	}

	return settings
}
