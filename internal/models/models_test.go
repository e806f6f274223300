package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionValid(t *testing.T) {
	for _, region := range []Region{
		RegionNorte, RegionNordeste, RegionCentroOeste, RegionSudeste, RegionSul,
	} {
		require.True(t, region.Valid(), "region %q should be valid", region)
	}

	require.False(t, Region("").Valid())
	require.False(t, Region("SOUTH").Valid())
	require.False(t, Region("sudeste").Valid())
}

func TestIntensityValid(t *testing.T) {
	for _, intensity := range []Intensity{
		IntensityLow, IntensityModerate, IntensityHigh, IntensitySevere, IntensityCritical,
	} {
		require.True(t, intensity.Valid(), "intensity %q should be valid", intensity)
	}

	require.False(t, Intensity("").Valid())
	require.False(t, Intensity("EXTREME").Valid())
	require.False(t, Intensity("low").Valid())
}
