// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molalign/core"
	"github.com/katalvlaran/molalign/logging"
)

// EnvPrefix is the environment variable prefix read by Load.
const EnvPrefix = "MOLALIGN"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the complete runtime configuration. Field tags give the
// environment key (under EnvPrefix), the YAML key and the default.
type Config struct {
	// Symmetry enables the correspondence search.
	Symmetry bool `envconfig:"SYMMETRY" default:"true" yaml:"symmetry"`
	// Superposition enables the optimal rotation; false compares coordinates as given.
	Superposition bool `envconfig:"SUPERPOSITION" default:"true" yaml:"superposition"`
	// LengthUnit is the unit results are reported in ("bohr" or "angstrom").
	LengthUnit string `envconfig:"LENGTH_UNIT" default:"bohr" yaml:"length_unit" validate:"required"`
	// MaxCandidates caps the correspondences evaluated per alignment.
	MaxCandidates int `envconfig:"MAX_CANDIDATES" default:"4096" yaml:"max_candidates" validate:"min=1"`
	// TieTolerance is the RMSD difference below which two candidates tie.
	TieTolerance float64 `envconfig:"TIE_TOLERANCE" default:"1e-9" yaml:"tie_tolerance" validate:"gte=0"`
	// FilterThreshold is the conformer de-duplication RMSD, in LengthUnit.
	FilterThreshold float64 `envconfig:"FILTER_THRESHOLD" default:"1.0" yaml:"filter_threshold" validate:"gte=0"`
	// Backend names the alignment backend to use.
	Backend string `envconfig:"BACKEND" default:"molalign" yaml:"backend" validate:"required"`

	Log    LogConfig    `envconfig:"LOG" yaml:"log"`
	Obabel ObabelConfig `envconfig:"OBABEL" yaml:"obabel"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Format string `envconfig:"FORMAT" default:"json" yaml:"format" validate:"oneof=json text console"`
	Level  string `envconfig:"LEVEL" default:"info" yaml:"level" validate:"oneof=debug info warn warning error"`
}

// ObabelConfig configures the Open Babel toolkit adapter.
type ObabelConfig struct {
	Binary  string        `envconfig:"BINARY" default:"obabel" yaml:"binary" validate:"required"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s" yaml:"timeout" validate:"gte=0"`
	// BreakerFailures is the number of consecutive failed runs that open the
	// circuit breaker; 0 disables it.
	BreakerFailures uint32 `envconfig:"BREAKER_FAILURES" default:"5" yaml:"breaker_failures"`
	// BreakerCooldown is how long an open breaker rejects runs before probing.
	BreakerCooldown time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s" yaml:"breaker_cooldown" validate:"gte=0"`
}

// Default returns the configuration Load produces with an empty environment.
func Default() Config {
	return Config{
		Symmetry:        true,
		Superposition:   true,
		LengthUnit:      string(core.Bohr),
		MaxCandidates:   4096,
		TieTolerance:    1e-9,
		FilterThreshold: 1.0,
		Backend:         "molalign",
		Log:             LogConfig{Format: "json", Level: "info"},
		Obabel: ObabelConfig{
			Binary:          "obabel",
			Timeout:         30 * time.Second,
			BreakerFailures: 5,
			BreakerCooldown: 30 * time.Second,
		},
	}
}

// Load reads MOLALIGN_* environment variables over the tag defaults and validates.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFiles reads KEY=VALUE dotenv files into the process environment and
// then calls Load. Variables already set in the environment win over the
// files. With no paths it behaves exactly like Load.
func LoadFiles(paths ...string) (Config, error) {
	if len(paths) > 0 {
		if err := godotenv.Load(paths...); err != nil {
			return Config{}, fmt.Errorf("config: dotenv: %w", err)
		}
	}

	return Load()
}

// Decode reads a YAML document over Default and validates. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that LengthUnit names a known unit.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, err := core.ParseLengthUnit(c.LengthUnit); err != nil {
		return fmt.Errorf("%w: length_unit: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Unit returns the parsed LengthUnit.
func (c Config) Unit() (core.LengthUnit, error) {
	return core.ParseLengthUnit(c.LengthUnit)
}

// Logging converts the log section into a logging.Config writing to stderr.
func (c LogConfig) Logging() logging.Config {
	out := logging.DefaultConfig()
	out.Format = c.Format
	out.Level = c.Level

	return out
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
