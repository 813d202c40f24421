package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/gauge"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildVariants(t *testing.T) {
	unit := "mbar"
	lo := 950.0
	vs, err := buildVariants(config.Settings{Gauges: map[string]config.GaugeOverride{
		"pressure":    {Unit: &unit, MinValue: &lo},
		"temperature": {Unit: &unit},
	}})
	require.NoError(t, err)
	require.Len(t, vs, len(gauge.Kinds))

	for _, v := range vs {
		switch v.Kind {
		case gauge.Pressure:
			assert.Equal(t, "mbar", v.Unit)
			assert.Equal(t, 950.0, v.MinValue)
		case gauge.TempDew:
			assert.Equal(t, "mbar", v.Unit)
		case gauge.Wind:
			assert.Equal(t, "kt", v.Unit)
		}
	}
}

func TestBuildVariantsRejects(t *testing.T) {
	_, err := buildVariants(config.Settings{Gauges: map[string]config.GaugeOverride{"hail": {}}})
	assert.ErrorIs(t, err, gauge.ErrVariant)

	step := 3.0
	_, err = buildVariants(config.Settings{Gauges: map[string]config.GaugeOverride{"pressure": {TickStep: &step}}})
	assert.ErrorIs(t, err, gauge.ErrVariant)
}

func TestSVGCommand(t *testing.T) {
	out, err := execute(t, "svg", "pressure", "1013")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg ")
	assert.Contains(t, out, `<text id="value"`)
	assert.Contains(t, out, ">1013</text>")
}

func TestSVGCommandAtRest(t *testing.T) {
	out, err := execute(t, "svg", "wind")
	require.NoError(t, err)
	assert.Contains(t, out, "Stille vind")
}

func TestSVGCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wind.svg")
	_, err := execute(t, "svg", "wind", "270", "12", "-o", path)
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Laber bris")
	assert.Contains(t, string(body), "rotate(270 100 100)")
	assert.Contains(t, string(body), "rotate(450 100 100)")
}

func TestSVGCommandBadArgs(t *testing.T) {
	_, err := execute(t, "svg", "hail")
	assert.Error(t, err)
	_, err = execute(t, "svg", "pressure", "high")
	assert.Error(t, err)
	_, err = execute(t, "svg")
	assert.Error(t, err)
}

func TestVariantsCommand(t *testing.T) {
	out, err := execute(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "- kind: wind\n")
	assert.Contains(t, out, "kind: pressure\n")
	assert.Contains(t, out, "unit: hPa\n")
	assert.Contains(t, out, "transition_duration: 1.5s\n")
}

func TestVariantsCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauges.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gauges:\n  pressure:\n    unit: inHg\n"), 0o644))

	out, err := execute(t, "variants", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unit: inHg\n")
}
