package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.NoError(t, table.Validate())
	assert.Equal(t, 65.0, table.SteelPerKg)
	assert.Equal(t, 7850.0, table.SteelDensity)
	assert.Equal(t, 5200.0, table.ConcretePrice(section.M25))
	assert.Equal(t, 310.0, table.ConcreteCarbon(section.M25))
}

func TestLoadFromFile(t *testing.T) {
	data := `
steel_per_kg: 72
concrete_per_cum:
  M25: 6000
`
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	table, err := LoadFromFile(path)
	require.NoError(t, err)

	// Overridden rates take effect, everything else keeps the default.
	assert.Equal(t, 72.0, table.SteelPerKg)
	assert.Equal(t, 6000.0, table.ConcretePrice(section.M25))
	assert.Equal(t, 5700.0, table.ConcretePrice(section.M30))
	assert.Equal(t, 7850.0, table.SteelDensity)
}

func TestLoadFromFileRejectsBadRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steel_per_kg: -5\n"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSteelMass(t *testing.T) {
	table := Default()
	// A 16mm bar (201.06 mm²) over 4m weighs about 6.31 kg.
	assert.InDelta(t, 6.31, table.SteelMass(section.BarDia(16).Area(), 4000), 0.01)
}
