package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// EnvPrefix prefixes every environment override, e.g. GODRAIN_PIPE_DIAMETER
const EnvPrefix = "GODRAIN"

// Config is the full, read-only parameter set of one verification run
type Config struct {
	Rainfall Rainfall `ini:"rainfall"`
	Pipe     Pipe     `ini:"pipe"`
	Flow     Flow     `ini:"flow"`
}

// Rainfall describes the design storm and the catchment it falls on
type Rainfall struct {
	Intensity         float64 `ini:"intensity" split_words:"true" validate:"gt=0"`      // L/s/m²
	CatchmentArea     float64 `ini:"catchment_area" split_words:"true" validate:"gt=0"` // m²
	DurationMinutes   float64 `ini:"duration_minutes" split_words:"true" validate:"gt=0"`
	RunoffCoefficient float64 `ini:"runoff_coefficient" split_words:"true" validate:"gt=0,lte=1"`

	// Drip tray under the deck (m³), reported only
	TrayVolume float64 `ini:"tray_volume" split_words:"true" validate:"gte=0"`
}

// Pipe describes the identical branches from deck to separator.
// Lengths are in metres.
type Pipe struct {
	Diameter         float64 `ini:"diameter" split_words:"true" validate:"gte=0.1"`
	VerticalHeight   float64 `ini:"vertical_height" split_words:"true" validate:"gt=0"`
	BranchCount      int     `ini:"branch_count" split_words:"true" validate:"gte=1"`
	HorizontalLength float64 `ini:"horizontal_length" split_words:"true" validate:"gt=0"`
	Slope            float64 `ini:"slope" split_words:"true" validate:"gte=0"`
	Roughness        float64 `ini:"roughness" split_words:"true" validate:"gt=0"`
	Viscosity        float64 `ini:"kinematic_viscosity" split_words:"true" validate:"gt=0"` // m²/s
}

// Flow holds the assumed filling degrees of each branch type
type Flow struct {
	FillingHorizontal float64 `ini:"filling_horizontal" split_words:"true" validate:"gt=0,lte=1"`
	FillingVertical   float64 `ini:"filling_vertical" split_words:"true" validate:"gt=0,lte=1"`
}

// Default returns the reference cooler-deck site
func Default() Config {
	return Config{
		Rainfall: Rainfall{
			Intensity:         0.03,
			CatchmentArea:     380,
			DurationMinutes:   60,
			RunoffCoefficient: 1.0, // impervious, painted deck
			TrayVolume:        50,
		},
		Pipe: Pipe{
			Diameter:         0.1,
			VerticalHeight:   6.0,
			BranchCount:      4,
			HorizontalLength: 10,
			Slope:            0.01,
			Roughness:        0.0000053, // glass fibre, 0.0053 mm
			Viscosity:        1.31e-6,   // water at ~10 °C
		},
		Flow: Flow{
			FillingHorizontal: 0.7,
			FillingVertical:   0.33,
		},
	}
}

// Load reads a Config with Read and validates it
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read builds a Config from the defaults, the optional INI file at path and
// GODRAIN_* environment variables, in that order. The result is not
// validated so callers can apply further overrides first.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := ini.Load(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", path)
		}
		if err := file.MapTo(&cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing config file %s", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "reading environment overrides")
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every parameter against its physical domain
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validating config")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Namespace(), fe.Value(), constraint(fe)))
	}
	return errors.Wrap(hydraulics.ErrInvalidParameter, strings.Join(msgs, "; "))
}

func constraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "> " + fe.Param()
	case "gte":
		return ">= " + fe.Param()
	case "lte":
		return "<= " + fe.Param()
	}
	return fe.Tag()
}

// Write saves cfg as an INI file that Load can read back
func Write(path string, cfg Config) error {
	file := ini.Empty()
	if err := ini.ReflectFrom(file, &cfg); err != nil {
		return errors.Wrap(err, "encoding config")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating config file %s", path)
	}

	if _, err := file.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing config file %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing config file %s", path)
	}
	return nil
}
