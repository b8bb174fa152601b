package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsMatchesSpecTable(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Enabled)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, TechFlexo, s.Technology)
	assert.Equal(t, 0.20, s.DefaultWidthMM)
	assert.Equal(t, 0.05, s.MinWidthMM)
	assert.Equal(t, 0.50, s.MaxWidthMM)
	assert.Equal(t, 6.0, s.MinTextSizePt)
	assert.Equal(t, 0.30, s.WhiteSpreadMM)
}

func TestAllSixPresetsLoad(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, 6)

	for _, tech := range []Technology{TechFlexo, TechOffset, TechDigital, TechGravure, TechScreen, TechDryOffset} {
		s, err := ApplyPreset(tech)
		require.NoError(t, err, tech)
		assert.Equal(t, tech, s.Technology)
		assert.Greater(t, s.DefaultWidthMM, 0.0)
	}
}

func TestApplyPresetUnknownTechnology(t *testing.T) {
	_, err := ApplyPreset(Technology("laser_etch"))
	assert.Error(t, err)
}

func TestTechnologyWidthMultipliers(t *testing.T) {
	assert.Equal(t, 1.2, TechnologyWidthMultiplier(TechFlexo))
	assert.Equal(t, 1.0, TechnologyWidthMultiplier(TechOffset))
	assert.Equal(t, 0.8, TechnologyWidthMultiplier(TechDigital))
	assert.Equal(t, 1.1, TechnologyWidthMultiplier(TechGravure))
	assert.Equal(t, 1.5, TechnologyWidthMultiplier(TechScreen))
}
