package cmd

import (
	"github.com/alexiusacademia/godrain/internal/config"
	"github.com/spf13/pflag"
)

// Flag names shared by the commands that override site parameters
const (
	flagIntensity      = "intensity"
	flagArea           = "area"
	flagDuration       = "duration"
	flagRunoff         = "runoff"
	flagDiameter       = "diameter"
	flagHeight         = "height"
	flagLength         = "length"
	flagSlope          = "slope"
	flagRoughness      = "roughness"
	flagViscosity      = "viscosity"
	flagFillHorizontal = "fill-horizontal"
	flagFillVertical   = "fill-vertical"
	flagBranches       = "branches"
)

func addRainfallFlags(fs *pflag.FlagSet) {
	d := config.Default().Rainfall
	fs.Float64(flagIntensity, d.Intensity, "Peak rainfall intensity (L/s/m²)")
	fs.Float64(flagArea, d.CatchmentArea, "Catchment area (m²)")
	fs.Float64(flagDuration, d.DurationMinutes, "Design storm duration (min)")
	fs.Float64(flagRunoff, d.RunoffCoefficient, "Runoff coefficient (0 < x ≤ 1)")
}

func addVerticalFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.Float64P(flagDiameter, "d", d.Pipe.Diameter, "Internal pipe diameter (m), site minimum 0.1")
	fs.Float64(flagHeight, d.Pipe.VerticalHeight, "Vertical drop height (m)")
	fs.Float64(flagFillVertical, d.Flow.FillingVertical, "Vertical pipe filling degree (0 < x ≤ 1)")
}

func addHorizontalFlags(fs *pflag.FlagSet) {
	d := config.Default()
	if fs.Lookup(flagDiameter) == nil {
		fs.Float64P(flagDiameter, "d", d.Pipe.Diameter, "Internal pipe diameter (m), site minimum 0.1")
	}
	fs.Float64(flagLength, d.Pipe.HorizontalLength, "Horizontal pipe length (m)")
	fs.Float64(flagSlope, d.Pipe.Slope, "Horizontal pipe slope (m/m)")
	fs.Float64(flagRoughness, d.Pipe.Roughness, "Absolute wall roughness (m)")
	fs.Float64(flagViscosity, d.Pipe.Viscosity, "Kinematic viscosity (m²/s)")
	fs.Float64(flagFillHorizontal, d.Flow.FillingHorizontal, "Horizontal pipe filling degree (0 < x ≤ 1)")
}

func addBranchFlag(fs *pflag.FlagSet) {
	fs.IntP(flagBranches, "n", config.Default().Pipe.BranchCount, "Number of identical parallel branches")
}

// loadSite reads the configured site, applies any flags the user set and
// validates the result
func loadSite(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Read(configFile)
	if err != nil {
		return config.Config{}, err
	}

	floats := map[string]*float64{
		flagIntensity:      &cfg.Rainfall.Intensity,
		flagArea:           &cfg.Rainfall.CatchmentArea,
		flagDuration:       &cfg.Rainfall.DurationMinutes,
		flagRunoff:         &cfg.Rainfall.RunoffCoefficient,
		flagDiameter:       &cfg.Pipe.Diameter,
		flagHeight:         &cfg.Pipe.VerticalHeight,
		flagLength:         &cfg.Pipe.HorizontalLength,
		flagSlope:          &cfg.Pipe.Slope,
		flagRoughness:      &cfg.Pipe.Roughness,
		flagViscosity:      &cfg.Pipe.Viscosity,
		flagFillHorizontal: &cfg.Flow.FillingHorizontal,
		flagFillVertical:   &cfg.Flow.FillingVertical,
	}
	for name, dst := range floats {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetFloat64(name)
		if err != nil {
			return config.Config{}, err
		}
		*dst = v
	}

	if fs.Changed(flagBranches) {
		n, err := fs.GetInt(flagBranches)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Pipe.BranchCount = n
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
