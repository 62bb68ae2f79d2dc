package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Default().Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	content := `[rainfall]
intensity = 0.05
catchment_area = 200

[pipe]
diameter = 0.15
branch_count = 2

[flow]
filling_vertical = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Rainfall.Intensity)
	assert.Equal(t, 200.0, cfg.Rainfall.CatchmentArea)
	assert.Equal(t, 0.15, cfg.Pipe.Diameter)
	assert.Equal(t, 2, cfg.Pipe.BranchCount)
	assert.Equal(t, 0.5, cfg.Flow.FillingVertical)

	// Keys absent from the file keep their defaults
	assert.Equal(t, 60.0, cfg.Rainfall.DurationMinutes)
	assert.Equal(t, 0.7, cfg.Flow.FillingHorizontal)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	require.NoError(t, os.WriteFile(path, []byte("[pipe]\ndiameter = 0.15\n"), 0o644))

	t.Setenv("GODRAIN_PIPE_DIAMETER", "0.2")
	t.Setenv("GODRAIN_RAINFALL_RUNOFF_COEFFICIENT", "0.9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Pipe.Diameter)
	assert.Equal(t, 0.9, cfg.Rainfall.RunoffCoefficient)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}

func TestValidate_RejectsOutOfDomainValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"diameter below site minimum", func(c *Config) { c.Pipe.Diameter = 0.08 }, "Pipe.Diameter"},
		{"zero duration", func(c *Config) { c.Rainfall.DurationMinutes = 0 }, "Rainfall.DurationMinutes"},
		{"runoff above one", func(c *Config) { c.Rainfall.RunoffCoefficient = 1.1 }, "Rainfall.RunoffCoefficient"},
		{"no branches", func(c *Config) { c.Pipe.BranchCount = 0 }, "Pipe.BranchCount"},
		{"negative slope", func(c *Config) { c.Pipe.Slope = -0.01 }, "Pipe.Slope"},
		{"zero viscosity", func(c *Config) { c.Pipe.Viscosity = 0 }, "Pipe.Viscosity"},
		{"overfilled vertical", func(c *Config) { c.Flow.FillingVertical = 1.2 }, "Flow.FillingVertical"},
		{"empty horizontal", func(c *Config) { c.Flow.FillingHorizontal = 0 }, "Flow.FillingHorizontal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, hydraulics.ErrInvalidParameter), "got %v", err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ini")

	want := Default()
	want.Pipe.Diameter = 0.125
	want.Pipe.BranchCount = 6
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRead_DoesNotValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	require.NoError(t, os.WriteFile(path, []byte("[pipe]\ndiameter = 0.05\n"), 0o644))

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Pipe.Diameter)

	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hydraulics.ErrInvalidParameter), "got %v", err)
}

func TestWrite_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.ini")
	err := Write(path, Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating config file")
}
