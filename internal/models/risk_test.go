package models

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 6400.0, Score(80, 80))
	assert.Equal(t, 1425.0, Score(95, 15))
	assert.Equal(t, 0.0, Score(0, 100))
}

func TestBuiltinWithinBounds(t *testing.T) {
	reg := Builtin()
	require.Len(t, reg, 5)
	for _, e := range reg {
		assert.GreaterOrEqual(t, e.Severity, AxisMin, e.Name)
		assert.LessOrEqual(t, e.Severity, AxisMax, e.Name)
		assert.GreaterOrEqual(t, e.Probability, AxisMin, e.Name)
		assert.LessOrEqual(t, e.Probability, AxisMax, e.Name)
	}
	require.NoError(t, reg.Validate())
}

func TestBuiltinOrder(t *testing.T) {
	var names []string
	for _, e := range Builtin() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		"Hybrid Delivery",
		"Coordination",
		"Speaker Budget",
		"GDPR Compliance",
		"Speaker Cancellation",
	}, names)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{6400, RiskCritical},
		{9999, RiskCritical},
		{4200, RiskHigh},
		{3600, RiskHigh},
		{2500, RiskMedium},
		{1800, RiskMedium},
		{1425, RiskLow},
		{0, RiskLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score), "score %g", tt.score)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#d73027")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xd7, G: 0x30, B: 0x27, A: 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	for _, bad := range []string{"", "d73027", "#d7302", "#gggggg", "red"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegisterValidate(t *testing.T) {
	reg := Register{
		{Name: "A", Severity: 120, Probability: 10, Color: "#000000", MarkerSize: 10},
		{Name: "A", Severity: 10, Probability: -1, Color: "nope", MarkerSize: 0},
		{Name: " ", Severity: 10, Probability: 10, Color: "#000", MarkerSize: 10},
	}
	err := reg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "severity 120 outside")
	assert.Contains(t, msg, "probability -1 outside")
	assert.Contains(t, msg, `invalid color "nope"`)
	assert.Contains(t, msg, "marker size 0 must be positive")
	assert.Contains(t, msg, `duplicate risk name "A"`)
	assert.Contains(t, msg, "name is empty")

	assert.EqualError(t, Register{}.Validate(), "register is empty")
}

func TestFilterByLevel(t *testing.T) {
	reg := Builtin()
	critical := reg.FilterByLevel(RiskCritical)
	require.Len(t, critical, 1)
	assert.Equal(t, "Hybrid Delivery", critical[0].Name)

	high := reg.FilterByLevel(RiskHigh)
	require.Len(t, high, 1)
	assert.Equal(t, "Coordination", high[0].Name)

	assert.Len(t, reg.FilterByLevel(RiskMedium), 2)
	assert.Len(t, reg.FilterByLevel(RiskLow), 1)
}
