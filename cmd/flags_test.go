package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

func TestParseBars(t *testing.T) {
	groups, err := parseBars("4x16")
	require.NoError(t, err)
	assert.Equal(t, []section.BarGroup{{Dia: 16, Count: 4}}, groups)

	groups, err = parseBars("4x20+2x20")
	require.NoError(t, err)
	assert.Equal(t, []section.BarGroup{
		{Dia: 20, Count: 4},
		{Dia: 20, Count: 2},
	}, groups)

	// Empty means no bars on that face.
	groups, err = parseBars("")
	require.NoError(t, err)
	assert.Nil(t, groups)
}

func TestParseBarsRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"4", "x16", "fourx16", "4xsixteen", "4-16"} {
		_, err := parseBars(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestParseStirrup(t *testing.T) {
	s, err := parseStirrup("8@150")
	require.NoError(t, err)
	assert.Equal(t, section.Stirrup{Dia: 8, Spacing: 150, Legs: 2}, s)

	s, err = parseStirrup("10@125.5")
	require.NoError(t, err)
	assert.Equal(t, 125.5, s.Spacing)
}

func TestParseStirrupRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"", "8", "@150", "eight@150", "8@fast"} {
		_, err := parseStirrup(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestFormatBars(t *testing.T) {
	s := formatBars([]section.BarGroup{{Dia: 20, Count: 4}, {Dia: 16, Count: 2}})
	assert.Equal(t, "4xφ20mm + 2xφ16mm", s)
}
