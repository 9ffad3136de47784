package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/farcloser/baseline"
)

// Locale selects the language of the report text.
type Locale int

const (
	LocaleSwedish Locale = iota // Default. Matches the reports consumed downstream.
	LocaleEnglish
)

func (l Locale) String() string {
	switch l {
	case LocaleSwedish:
		return "sv"
	case LocaleEnglish:
		return "en"
	}

	return "unknown"
}

// ParseLocale converts a string to a Locale value.
func ParseLocale(s string) (Locale, error) {
	switch s {
	case "sv", "":
		return LocaleSwedish, nil
	case "en":
		return LocaleEnglish, nil
	default:
		return 0, fmt.Errorf("unknown locale %q (valid: sv, en)", s)
	}
}

// Strings holds every piece of fixed report text.
type Strings struct {
	Title          string `yaml:"title"`
	Generated      string `yaml:"generated"`
	LogFiles       string `yaml:"log_files"`
	Summary        string `yaml:"summary"`
	TotalChecks    string `yaml:"total_checks"`
	WorstStatus    string `yaml:"worst_status"`
	RiskLevel      string `yaml:"risk_level"`
	Findings       string `yaml:"findings"`
	NoFindings     string `yaml:"no_findings"`
	Details        string `yaml:"details"`
	DecodeErrors   string `yaml:"decode_errors"`
	NoDecodeErrors string `yaml:"no_decode_errors"`
	RiskLow        string `yaml:"risk_low"`
	RiskMedium     string `yaml:"risk_medium"`
	RiskHigh       string `yaml:"risk_high"`
}

// StringsFor returns the built-in text for a locale.
func StringsFor(locale Locale) Strings {
	if locale == LocaleEnglish {
		return Strings{
			Title:          "Security baseline report",
			Generated:      "Generated",
			LogFiles:       "Log files read",
			Summary:        "Summary",
			TotalChecks:    "Total number of checks (excl. start/summary)",
			WorstStatus:    "Worst status",
			RiskLevel:      "Assessed risk level (simple model)",
			Findings:       "Deviations (WARN/FAIL)",
			NoFindings:     "No deviations were identified.",
			Details:        "Details",
			DecodeErrors:   "Read errors (if any)",
			NoDecodeErrors: "No read errors.",
			RiskLow:        "Low",
			RiskMedium:     "Medium",
			RiskHigh:       "High",
		}
	}

	return Strings{
		Title:          "Security baseline-rapport",
		Generated:      "Genererad",
		LogFiles:       "Inlästa loggfiler",
		Summary:        "Sammanfattning",
		TotalChecks:    "Totalt antal kontroller (exkl. start/summering)",
		WorstStatus:    "Värsta status",
		RiskLevel:      "Bedömd risknivå (enkel modell)",
		Findings:       "Avvikelser (WARN/FAIL)",
		NoFindings:     "Inga avvikelser identifierades.",
		Details:        "Detaljer",
		DecodeErrors:   "Fel vid inläsning (om några)",
		NoDecodeErrors: "Inga inläsningsfel.",
		RiskLow:        "Låg",
		RiskMedium:     "Medel",
		RiskHigh:       "Hög",
	}
}

// Risk returns the label for a risk level.
func (s Strings) Risk(risk baseline.Risk) string {
	switch risk {
	case baseline.RiskLow:
		return s.RiskLow
	case baseline.RiskMedium:
		return s.RiskMedium
	case baseline.RiskHigh:
		return s.RiskHigh
	}

	return risk.String()
}

// LoadStrings reads a YAML file of overrides and applies its non-empty keys on top of base.
func LoadStrings(path string, base Strings) (Strings, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // CLI tool reads a user-specified file
	if err != nil {
		return base, fmt.Errorf("read strings: %w", err)
	}

	var overrides Strings
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return base, fmt.Errorf("parse strings: %w", err)
	}

	return base.merge(overrides), nil
}

func (s Strings) merge(overrides Strings) Strings {
	pairs := []struct {
		dst *string
		src string
	}{
		{&s.Title, overrides.Title},
		{&s.Generated, overrides.Generated},
		{&s.LogFiles, overrides.LogFiles},
		{&s.Summary, overrides.Summary},
		{&s.TotalChecks, overrides.TotalChecks},
		{&s.WorstStatus, overrides.WorstStatus},
		{&s.RiskLevel, overrides.RiskLevel},
		{&s.Findings, overrides.Findings},
		{&s.NoFindings, overrides.NoFindings},
		{&s.Details, overrides.Details},
		{&s.DecodeErrors, overrides.DecodeErrors},
		{&s.NoDecodeErrors, overrides.NoDecodeErrors},
		{&s.RiskLow, overrides.RiskLow},
		{&s.RiskMedium, overrides.RiskMedium},
		{&s.RiskHigh, overrides.RiskHigh},
	}

	for _, pair := range pairs {
		if pair.src != "" {
			*pair.dst = pair.src
		}
	}

	return s
}
