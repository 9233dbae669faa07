package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clusterlab/clustercheck/schema"
)

// Default values for configuration.
const (
	DefaultTolerance = 1e-7
	DefaultPrecision = 6
	DefaultLimit     = 25
)

// Config holds the validated, final runtime configuration.
type Config struct {
	Tolerance  float64
	Checks     []schema.CheckID
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Limit      int
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	// Score command inputs, parsed from flags or files.
	LabelsTrue []int
	LabelsPred []int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Tolerance  float64 `mapstructure:"tolerance"`
	ChecksStr  string  `mapstructure:"checks"`
	OutputStr  string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Precision  int     `mapstructure:"precision"`
	Limit      int     `mapstructure:"limit"`
	ColorStr   string  `mapstructure:"color"`
	Width      int     `mapstructure:"width"`

	LabelsTrueStr string `mapstructure:"labels-true"`
	LabelsPredStr string `mapstructure:"labels-pred"`
}

// ProcessAndValidate turns raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %g", input.Tolerance)
	}
	cfg.Tolerance = input.Tolerance
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}

	checks, err := ParseChecks(input.ChecksStr)
	if err != nil {
		return err
	}
	cfg.Checks = checks

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.OutputStr)))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q", input.OutputStr)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	if output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.Precision = input.Precision
	if cfg.Precision <= 0 {
		cfg.Precision = DefaultPrecision
	}
	cfg.Limit = input.Limit
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	cfg.UseColors = !strings.EqualFold(input.ColorStr, "no")
	cfg.Width = input.Width

	if input.LabelsTrueStr != "" || input.LabelsPredStr != "" {
		cfg.LabelsTrue, err = ParseLabels(input.LabelsTrueStr)
		if err != nil {
			return fmt.Errorf("labels-true: %w", err)
		}
		cfg.LabelsPred, err = ParseLabels(input.LabelsPredStr)
		if err != nil {
			return fmt.Errorf("labels-pred: %w", err)
		}
		if len(cfg.LabelsTrue) != len(cfg.LabelsPred) {
			return fmt.Errorf("labels-true has %d entries, labels-pred has %d",
				len(cfg.LabelsTrue), len(cfg.LabelsPred))
		}
	}
	return nil
}

// ParseChecks parses a comma-separated check list. Empty input selects every
// check.
func ParseChecks(s string) ([]schema.CheckID, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}
	var checks []schema.CheckID
	for _, part := range strings.Split(s, ",") {
		id := schema.CheckID(strings.TrimSpace(strings.ToLower(part)))
		if id == "" {
			continue
		}
		if _, ok := schema.ValidChecks[id]; !ok {
			return nil, fmt.Errorf("unknown check %q", part)
		}
		checks = append(checks, id)
	}
	return checks, nil
}

// ParseLabels parses a comma-separated integer label vector, e.g. "0,0,1,1".
func ParseLabels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty label vector")
	}
	parts := strings.Split(s, ",")
	labels := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad label %q: %w", part, err)
		}
		labels = append(labels, v)
	}
	return labels, nil
}
