package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/docksim/internal/rendezvous"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "baseline", cfg.Controller)
	assert.Equal(t, 0.05, cfg.Dt)
	assert.Equal(t, rendezvous.DefaultBody(), cfg.BodyConfig())
	assert.Equal(t, rendezvous.DefaultIdentity(), cfg.Identity())
	assert.Equal(t, rendezvous.NewSafetyMonitor(), cfg.SafetyMonitor())
	assert.NoError(t, cfg.Validate())
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt, cfg.Duration = 0.1, 7

	sc := cfg.SimConfig()
	assert.Equal(t, 0.1, sc.Dt)
	assert.Equal(t, 7.0, sc.Duration)
	assert.True(t, sc.ValidateState, "runs always reject non-finite states")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := []byte(`
controller: challenge
duration: 12.5
chase:
  x: 0.4
  theta: 3.0
law:
  bias: per_axis
  integral_bound: 0.5
  elapsed_step: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "challenge", cfg.Controller)
	assert.Equal(t, 12.5, cfg.Duration)
	assert.Equal(t, 0.05, cfg.Dt, "unset keys keep defaults")
	assert.Equal(t, 0.4, cfg.Chase.State().Pose.X)

	s := cfg.ApplyLaw(rendezvous.Baseline())
	assert.Equal(t, rendezvous.BiasPerAxis, s.Law.Bias)
	assert.Equal(t, 0.5, s.IntegralBound)
	assert.True(t, s.UseElapsed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero dt", "dt: 0"},
		{"negative mass", "body: {mass: -1, inertia: 1}"},
		{"unknown bias", "law: {bias: diagonal}"},
		{"negative bound", "law: {integral_bound: -1}"},
		{"nan state", "chase: {x: .nan}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("misaligned")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	assert.Contains(t, names, "approach")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestMisalignedPresetStartsGated(t *testing.T) {
	cfg := GetPreset("misaligned")
	mode := rendezvous.NewProximityGate().Select(cfg.Chase.State(), cfg.Target.State())
	assert.Equal(t, rendezvous.ModeGated, mode)
}
