// Package picklist wires the searchable pick list control to its host:
// configuration loaded from picklist.toml, the platform keyboard policy and
// constructors for controls and their environment.
package picklist

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/agiangrant/picklist/control"
	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/textinput"
)

// DefaultConfigFile is the file LoadConfig reads when given an empty path.
const DefaultConfigFile = "picklist.toml"

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownPlatform is returned for an unrecognized platform name.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Config represents the picklist.toml configuration file
type Config struct {
	Platform PlatformConfig `toml:"platform"`
	Click    ClickConfig    `toml:"click"`
	Input    InputConfig    `toml:"input"`
}

type PlatformConfig struct {
	// Name of the platform whose shortcuts apply. Empty means the current one.
	Name string `toml:"name"`
}

// ClickConfig sets the multi-click thresholds
type ClickConfig struct {
	IntervalMS int     `toml:"interval_ms"`
	Distance   float32 `toml:"distance"`
}

type InputConfig struct {
	// "searchable" or "text_input"
	Variant  string  `toml:"variant"`
	TextSize float32 `toml:"text_size"`
	Font     string  `toml:"font"`
	// Top, right, bottom, left
	Padding             [4]float32 `toml:"padding"`
	DisclosureWidth     float32    `toml:"disclosure_width"`
	SelectAllFirstClick bool       `toml:"select_all_first_click"`
	Submit              bool       `toml:"submit"`
	Placeholder         string     `toml:"placeholder"`
	OptionsEmptyMessage string     `toml:"options_empty_message"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Click: ClickConfig{
			IntervalMS: 300,
			Distance:   5.0,
		},
		Input: InputConfig{
			Variant:         control.VariantSearchable.String(),
			TextSize:        control.DefaultTextSize,
			Font:            "regular",
			Padding:         [4]float32{5, 10, 5, 10},
			DisclosureWidth: control.DefaultDisclosureWidth,
		},
	}
}

// LoadConfig loads the configuration from path (picklist.toml if empty).
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Validate checks sizes and names.
func (c Config) Validate() error {
	if c.Click.IntervalMS < 0 {
		return fmt.Errorf("%w: click.interval_ms must not be negative", ErrInvalidConfig)
	}
	if c.Click.Distance < 0 {
		return fmt.Errorf("%w: click.distance must not be negative", ErrInvalidConfig)
	}
	if c.Input.TextSize < 0 {
		return fmt.Errorf("%w: input.text_size must not be negative", ErrInvalidConfig)
	}
	if c.Input.DisclosureWidth < 0 {
		return fmt.Errorf("%w: input.disclosure_width must not be negative", ErrInvalidConfig)
	}
	for _, p := range c.Input.Padding {
		if p < 0 {
			return fmt.Errorf("%w: input.padding must not be negative", ErrInvalidConfig)
		}
	}
	if _, err := c.Input.variant(); err != nil {
		return err
	}
	if c.Platform.Name != "" {
		if _, err := ParsePlatform(c.Platform.Name); err != nil {
			return err
		}
	}
	return nil
}

// ClickPolicy returns the configured multi-click thresholds.
func (c Config) ClickPolicy() event.ClickPolicy {
	policy := event.DefaultClickPolicy()
	if c.Click.IntervalMS > 0 {
		policy.Interval = time.Duration(c.Click.IntervalMS) * time.Millisecond
	}
	if c.Click.Distance > 0 {
		policy.Distance = c.Click.Distance
	}
	return policy
}

func (c InputConfig) variant() (control.Variant, error) {
	switch strings.ToLower(c.Variant) {
	case "", "searchable":
		return control.VariantSearchable, nil
	case "text_input", "text-input":
		return control.VariantTextInput, nil
	default:
		return control.VariantSearchable, fmt.Errorf("%w: unknown input.variant %q", ErrInvalidConfig, c.Variant)
	}
}

// Env builds the control environment for this configuration.
func (c Config) Env(measurer textinput.Measurer, clipboard control.Clipboard, logger *zerolog.Logger) (control.Env, error) {
	platform, err := ResolvePlatform(c.Platform.Name)
	if err != nil {
		return control.Env{}, err
	}
	return control.Env{
		Measurer:  measurer,
		Clipboard: clipboard,
		Platform:  platform,
		Clicks:    c.ClickPolicy(),
		Logger:    logger,
	}, nil
}

// New returns a pick list over options configured from the [input] section.
func New[T comparable](config Config, options []T) (*control.PickList[T], error) {
	in := config.Input
	variant, err := in.variant()
	if err != nil {
		return nil, err
	}
	return &control.PickList[T]{
		Options:             options,
		Placeholder:         in.Placeholder,
		OptionsEmptyMessage: in.OptionsEmptyMessage,
		Variant:             variant,
		Padding: event.Padding{
			Top:    in.Padding[0],
			Right:  in.Padding[1],
			Bottom: in.Padding[2],
			Left:   in.Padding[3],
		},
		TextSize:            in.TextSize,
		Font:                in.Font,
		DisclosureWidth:     in.DisclosureWidth,
		SelectAllFirstClick: in.SelectAllFirstClick,
		Submit:              in.Submit,
	}, nil
}
