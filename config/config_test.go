package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Level)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, RotationSuper, cfg.Rotation)
	assert.Equal(t, LockdownExtended, cfg.Lockdown)
	assert.True(t, cfg.Beep)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Help)
	assert.False(t, cfg.Debug)
}

func TestFlagOverrides(t *testing.T) {
	cfg, err := Load([]string{
		"-level", "9",
		"-seed", "42",
		"-rotation", "classic",
		"-lockdown", "infinite",
		"-beep=false",
		"-debug",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Level)
	assert.Equal(t, uint32(42), cfg.Seed)
	assert.Equal(t, RotationClassic, cfg.Rotation)
	assert.Equal(t, LockdownInfinite, cfg.Lockdown)
	assert.False(t, cfg.Beep)
	assert.True(t, cfg.Debug)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"level too low", []string{"-level", "0"}},
		{"level too high", []string{"-level", "16"}},
		{"seed out of range", []string{"-seed", "4294967296"}},
		{"unknown rotation", []string{"-rotation", "srs2"}},
		{"unknown lockdown", []string{"-lockdown", "forever"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.args)
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MINOTERM_LEVEL", "5")
	t.Setenv("MINOTERM_LOCKDOWN", "classic")
	t.Setenv("MINOTERM_DEBUG", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Level)
	assert.Equal(t, LockdownClassic, cfg.Lockdown)
	assert.True(t, cfg.Debug)
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv("MINOTERM_LEVEL", "5")
	cfg, err := Load([]string{"-level", "8"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Level)
}
