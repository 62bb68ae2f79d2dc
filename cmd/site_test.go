package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/godrain/internal/config"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addRainfallFlags(fs)
	addVerticalFlags(fs)
	addHorizontalFlags(fs)
	addBranchFlag(fs)
	return fs
}

func TestLoadSite_DefaultsWithoutFlags(t *testing.T) {
	fs := siteFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := loadSite(fs)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadSite_ChangedFlagsOverride(t *testing.T) {
	fs := siteFlags()
	require.NoError(t, fs.Parse([]string{"-d", "0.15", "--slope", "0.02", "-n", "6", "--runoff", "0.8"}))

	cfg, err := loadSite(fs)
	require.NoError(t, err)
	assert.Equal(t, 0.15, cfg.Pipe.Diameter)
	assert.Equal(t, 0.02, cfg.Pipe.Slope)
	assert.Equal(t, 6, cfg.Pipe.BranchCount)
	assert.Equal(t, 0.8, cfg.Rainfall.RunoffCoefficient)
	assert.Equal(t, config.Default().Pipe.HorizontalLength, cfg.Pipe.HorizontalLength)
}

func TestLoadSite_RejectsOutOfDomainFlag(t *testing.T) {
	fs := siteFlags()
	require.NoError(t, fs.Parse([]string{"--diameter", "0.05"}))

	_, err := loadSite(fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hydraulics.ErrInvalidParameter))
}

func TestLoadSite_FlagOverridesInvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	require.NoError(t, os.WriteFile(path, []byte("[pipe]\ndiameter = 0.05\n"), 0o644))

	configFile = path
	t.Cleanup(func() { configFile = "" })

	fs := siteFlags()
	require.NoError(t, fs.Parse([]string{"--diameter", "0.2"}))

	cfg, err := loadSite(fs)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Pipe.Diameter)
}

func TestLoadSite_InvalidFileValueWithoutFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.ini")
	require.NoError(t, os.WriteFile(path, []byte("[pipe]\ndiameter = 0.05\n"), 0o644))

	configFile = path
	t.Cleanup(func() { configFile = "" })

	fs := siteFlags()
	require.NoError(t, fs.Parse(nil))

	_, err := loadSite(fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hydraulics.ErrInvalidParameter))
}

func TestAddHorizontalFlags_SharesDiameter(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addVerticalFlags(fs)
	assert.NotPanics(t, func() { addHorizontalFlags(fs) })
	assert.NotNil(t, fs.Lookup(flagDiameter))
}
