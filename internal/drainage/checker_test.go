package drainage

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/godrain/internal/config"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestChecker_ReferenceSite(t *testing.T) {
	t.Parallel()

	report, err := NewChecker(config.Default(), zaptest.NewLogger(t)).Run()
	require.NoError(t, err)

	assert.InDelta(t, 11.4, report.RequiredFlow, 1e-9)
	assert.InDelta(t, 41040, report.RainVolume, 1e-6)
	assert.InDelta(t, 50000, report.TrayVolume, 1e-9)
	assert.InDelta(t, 108, report.IntensityMMH, 1e-9)

	assert.InDelta(t, 28.1, report.VerticalCheck.BranchCapacity, 0.1)
	assert.InDelta(t, 112.4, report.VerticalCheck.TotalCapacity, 0.2)
	assert.InDelta(t, 2.85, report.VerticalCheck.FlowPerBranch, 1e-9)
	assert.True(t, report.VerticalCheck.IsSufficient)

	assert.InDelta(t, 4.61, report.HorizontalCheck.BranchCapacity, 0.01)
	assert.InDelta(t, 18.43, report.HorizontalCheck.TotalCapacity, 0.05)
	assert.True(t, report.HorizontalCheck.IsSufficient)
	assert.Equal(t, hydraulics.Turbulent, report.Horizontal.Regime)

	assert.True(t, report.IsSufficient)
	assert.Contains(t, report.Message, "sufficient")
}

func TestChecker_InsufficientHorizontal(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	// 0.1 L/s/m² over 380 m² needs 38 L/s, more than four horizontal branches carry
	cfg.Rainfall.Intensity = 0.1

	report, err := NewChecker(cfg, nil).Run()
	require.NoError(t, err)

	assert.True(t, report.VerticalCheck.IsSufficient)
	assert.False(t, report.HorizontalCheck.IsSufficient)
	assert.False(t, report.IsSufficient)
	assert.Contains(t, report.Message, "horizontal")
}

func TestChecker_InsufficientBoth(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rainfall.Intensity = 0.5
	cfg.Pipe.BranchCount = 1

	report, err := NewChecker(cfg, nil).Run()
	require.NoError(t, err)
	assert.False(t, report.VerticalCheck.IsSufficient)
	assert.False(t, report.HorizontalCheck.IsSufficient)
	assert.Contains(t, report.Message, "both")
}

func TestChecker_RejectsInvalidConfigBeforeSolving(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Flow.FillingHorizontal = 1.5

	_, err := NewChecker(cfg, nil).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hydraulics.ErrInvalidParameter))
}

func TestChecker_ZeroSlopeIsDegenerate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Pipe.Slope = 0

	_, err := NewChecker(cfg, nil).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hydraulics.ErrNumericDegenerate))
}

func TestChecker_DemandOnly(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rainfall.DurationMinutes = 15

	report, err := NewChecker(cfg, nil).Demand()
	require.NoError(t, err)
	assert.InDelta(t, 11.4, report.RequiredFlow, 1e-9)
	assert.InDelta(t, 10260, report.RainVolume, 1e-6)
	assert.Nil(t, report.VerticalCheck)
	assert.Nil(t, report.HorizontalCheck)
}
