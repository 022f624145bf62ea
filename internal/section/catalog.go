package section

// Catalog enumerates the discrete reinforcement choices an optimizer may
// draw from. The sets are explicit so that an out-of-catalog choice can
// never be generated, only rejected at construction.
type Catalog struct {
	// Bars are the permissible main bar diameters.
	Bars []BarDia `json:"bars"`
	// MaxBarsPerLayer caps the bar count in a single layer.
	MaxBarsPerLayer int `json:"max_bars_per_layer"`
	// MaxLayers caps the number of bottom steel layers.
	MaxLayers int `json:"max_layers"`

	// StirrupDias are the permissible stirrup diameters.
	StirrupDias []BarDia `json:"stirrup_dias"`
	// StirrupSpacings are the permissible center-to-center spacing steps
	// in mm. The set is discrete; spacing is never treated as continuous.
	StirrupSpacings []float64 `json:"stirrup_spacings"`
}

// DefaultCatalog returns the catalog of commonly stocked sizes.
func DefaultCatalog() Catalog {
	return Catalog{
		Bars:            []BarDia{12, 16, 20, 25},
		MaxBarsPerLayer: 6,
		MaxLayers:       2,
		StirrupDias:     []BarDia{8, 10},
		StirrupSpacings: []float64{100, 125, 150, 175, 200, 250, 300},
	}
}

// Validate checks that every catalog entry is a recognized size.
func (c Catalog) Validate() error {
	if len(c.Bars) == 0 {
		return Errorf("catalog must list at least one bar diameter")
	}
	for _, d := range c.Bars {
		if !d.Valid() {
			return Errorf("catalog bar diameter %dmm is not a standard size", d)
		}
	}
	if c.MaxBarsPerLayer < 2 {
		return Errorf("catalog must allow at least 2 bars per layer, got %d", c.MaxBarsPerLayer)
	}
	if c.MaxLayers < 1 {
		return Errorf("catalog must allow at least one layer, got %d", c.MaxLayers)
	}
	if len(c.StirrupDias) == 0 {
		return Errorf("catalog must list at least one stirrup diameter")
	}
	for _, d := range c.StirrupDias {
		if !d.Valid() {
			return Errorf("catalog stirrup diameter %dmm is not a standard size", d)
		}
	}
	if len(c.StirrupSpacings) == 0 {
		return Errorf("catalog must list at least one stirrup spacing")
	}
	for _, s := range c.StirrupSpacings {
		if s <= 0 {
			return Errorf("catalog stirrup spacing must be positive, got %.2f", s)
		}
	}
	return nil
}
