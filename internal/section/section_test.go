package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(230, 450, 409, 25, 4000)
	require.NoError(t, err)
	assert.Equal(t, 230.0, g.Width)
	assert.Equal(t, 409.0, g.EffectiveDepth)
}

func TestGeometryRejectsMeterInputs(t *testing.T) {
	// A width of 0.23 is almost certainly meters, not millimeters.
	_, err := NewGeometry(0.23, 0.45, 0.409, 25, 4000)
	require.Error(t, err)

	var cfg *ConfigError
	assert.True(t, errors.As(err, &cfg))
	assert.Contains(t, err.Error(), "check units")
}

func TestGeometryInvariants(t *testing.T) {
	cases := []struct {
		name                  string
		b, d, eff, cover, spn float64
	}{
		{"zero width", 0, 450, 409, 25, 4000},
		{"negative depth", 230, -450, 409, 25, 4000},
		{"effective depth above overall", 230, 450, 460, 25, 4000},
		{"cover below code minimum", 230, 450, 409, 15, 4000},
		{"implausible span", 230, 450, 409, 25, 50000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGeometry(tc.b, tc.d, tc.eff, tc.cover, tc.spn)
			var cfg *ConfigError
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfg))
		})
	}
}

func TestGeometryInnerWidth(t *testing.T) {
	g, err := NewGeometry(230, 450, 409, 25, 4000)
	require.NoError(t, err)
	assert.Equal(t, 164.0, g.InnerWidth(8))
}

func TestGeometryConcreteVolume(t *testing.T) {
	g, err := NewGeometry(230, 450, 409, 25, 4000)
	require.NoError(t, err)
	assert.InDelta(t, 0.414, g.ConcreteVolume(), 1e-9)
}

func TestMaterialGrades(t *testing.T) {
	m, err := NewMaterial(M25, Fe415)
	require.NoError(t, err)
	assert.Equal(t, 25.0, m.Concrete.Fck())
	assert.Equal(t, 415.0, m.Steel.Fy())
	assert.True(t, m.Steel.Deformed())

	// Fe250 is plain mild steel.
	assert.False(t, Fe250.Deformed())
}

func TestMaterialRejectsUnknownGrades(t *testing.T) {
	_, err := NewMaterial(ConcreteGrade("M27"), Fe415)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "M27")

	_, err = NewMaterial(M25, SteelGrade("Fe600"))
	require.Error(t, err)
}

func TestDemandValidation(t *testing.T) {
	_, err := NewDemand(120, 85)
	require.NoError(t, err)

	_, err = NewDemand(-1, 85)
	assert.Error(t, err)

	// kN·m in the hundreds of thousands is a unit mistake.
	_, err = NewDemand(120000, 85)
	assert.Error(t, err)
}

func TestBarDia(t *testing.T) {
	assert.True(t, BarDia(16).Valid())
	assert.False(t, BarDia(14).Valid())
	assert.InDelta(t, 201.06, BarDia(16).Area(), 0.01)
	assert.InDelta(t, 490.87, BarDia(25).Area(), 0.01)
}

func TestLayoutAreas(t *testing.T) {
	l := Layout{
		Bottom:  []BarGroup{{Dia: 16, Count: 4}, {Dia: 16, Count: 2}},
		Top:     []BarGroup{{Dia: 12, Count: 2}},
		Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 2},
	}
	assert.InDelta(t, 1206.37, l.BottomArea(), 0.01)
	assert.InDelta(t, 226.19, l.TopArea(), 0.01)
	assert.Equal(t, BarDia(16), l.MaxBottomDia())
	assert.Equal(t, []BarDia{8, 12, 16}, l.Diameters())
}

func TestLayoutValidate(t *testing.T) {
	valid := Layout{
		Bottom:  []BarGroup{{Dia: 16, Count: 4}},
		Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 2},
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		layout Layout
	}{
		{"no bottom steel", Layout{Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 2}}},
		{"single bar in a layer", Layout{
			Bottom:  []BarGroup{{Dia: 16, Count: 1}},
			Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 2},
		}},
		{"non-standard diameter", Layout{
			Bottom:  []BarGroup{{Dia: 14, Count: 4}},
			Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 2},
		}},
		{"zero stirrup spacing", Layout{
			Bottom:  []BarGroup{{Dia: 16, Count: 4}},
			Stirrup: Stirrup{Dia: 8, Spacing: 0, Legs: 2},
		}},
		{"single-leg stirrup", Layout{
			Bottom:  []BarGroup{{Dia: 16, Count: 4}},
			Stirrup: Stirrup{Dia: 8, Spacing: 150, Legs: 1},
		}},
		{"negative anchorage", Layout{
			Bottom:          []BarGroup{{Dia: 16, Count: 4}},
			Stirrup:         Stirrup{Dia: 8, Spacing: 150, Legs: 2},
			AnchorageLength: -100,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.layout.Validate())
		})
	}
}

func TestCatalogValidate(t *testing.T) {
	assert.NoError(t, DefaultCatalog().Validate())

	c := DefaultCatalog()
	c.Bars = nil
	assert.Error(t, c.Validate())

	c = DefaultCatalog()
	c.Bars = []BarDia{14}
	assert.Error(t, c.Validate())

	c = DefaultCatalog()
	c.MaxBarsPerLayer = 1
	assert.Error(t, c.Validate())

	c = DefaultCatalog()
	c.StirrupSpacings = []float64{0}
	assert.Error(t, c.Validate())
}

func TestLoadBeamsFromFile(t *testing.T) {
	data := `[
		{
			"name": "B1",
			"geometry": {"width": 230, "depth": 450, "effective_depth": 409, "cover": 25, "span": 4000},
			"material": {"concrete": "M25", "steel": "Fe415"},
			"demand": {"moment": 120, "shear": 85}
		},
		{
			"geometry": {"width": 300, "depth": 600, "effective_depth": 540, "cover": 30, "span": 5000},
			"material": {"concrete": "M30", "steel": "Fe500"},
			"demand": {"moment": 310, "shear": 160}
		}
	]`
	path := filepath.Join(t.TempDir(), "beams.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	beams, err := LoadBeamsFromFile(path)
	require.NoError(t, err)
	require.Len(t, beams, 2)
	assert.Equal(t, "B1", beams[0].Name)
	assert.Equal(t, M30, beams[1].Material.Concrete)
}

func TestLoadBeamsFromFileRejectsInvalid(t *testing.T) {
	// A beam with an unknown grade must be rejected with its index.
	data := `[
		{
			"geometry": {"width": 230, "depth": 450, "effective_depth": 409, "cover": 25, "span": 4000},
			"material": {"concrete": "M99", "steel": "Fe415"},
			"demand": {"moment": 120, "shear": 85}
		}
	]`
	path := filepath.Join(t.TempDir(), "beams.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadBeamsFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beam 1")

	// Empty array.
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	_, err = LoadBeamsFromFile(path)
	assert.Error(t, err)

	// Missing file.
	_, err = LoadBeamsFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
