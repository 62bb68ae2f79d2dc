package hydraulics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredFlow_ReferenceSite(t *testing.T) {
	t.Parallel()

	flow, err := RequiredFlow(0.03, 380, 60, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 11.4, flow, 1e-9)
}

func TestRequiredFlow_IndependentOfDuration(t *testing.T) {
	t.Parallel()

	base, err := RequiredFlow(0.03, 380, 60, 0.85)
	require.NoError(t, err)

	for _, duration := range []float64{1, 10, 15, 37.5, 120, 1440} {
		flow, err := RequiredFlow(0.03, 380, duration, 0.85)
		require.NoError(t, err)
		assert.InDelta(t, base, flow, 1e-9, "duration %v min", duration)
		assert.InDelta(t, 0.03*380*0.85, flow, 1e-9)
	}
}

func TestRainVolume(t *testing.T) {
	t.Parallel()

	// 0.03 L/s/m² over 380 m² for one hour
	volume, err := RainVolume(0.03, 380, 60, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 41040.0, volume, 1e-6)
}

func TestRequiredFlow_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                               string
		intensity, area, duration, runoff float64
	}{
		{"zero intensity", 0, 380, 60, 1},
		{"negative area", 0.03, -1, 60, 1},
		{"zero duration", 0.03, 380, 0, 1},
		{"zero runoff", 0.03, 380, 60, 0},
		{"runoff above one", 0.03, 380, 60, 1.2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := RequiredFlow(tt.intensity, tt.area, tt.duration, tt.runoff)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestIntensityMillimetresPerHour(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 108.0, IntensityMillimetresPerHour(0.03), 1e-9)
}
