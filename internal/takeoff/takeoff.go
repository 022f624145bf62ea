// Package takeoff aggregates steel and concrete quantities and costs for
// accepted designs. It contains no compliance logic: a design reaching
// this package is assumed to have passed the checker already.
package takeoff

import (
	"sort"

	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
)

// Design is one accepted beam design.
type Design struct {
	Geometry section.Geometry `json:"geometry"`
	Material section.Material `json:"material"`
	Layout   section.Layout   `json:"layout"`
}

// SteelItem is the rolled-up quantity for one bar diameter.
type SteelItem struct {
	Dia    section.BarDia `json:"dia"`
	MassKg float64        `json:"mass_kg"`
	Cost   float64        `json:"cost"`
}

// Result is the itemized takeoff over a set of designs.
type Result struct {
	Items           []SteelItem `json:"items"` // sorted by diameter
	SteelMassKg     float64     `json:"steel_mass_kg"`
	ConcreteVolume  float64     `json:"concrete_volume_cum"`
	SteelCost       float64     `json:"steel_cost"`
	ConcreteCost    float64     `json:"concrete_cost"`
	TotalCost       float64     `json:"total_cost"`
	CarbonKg        float64     `json:"carbon_kg"`
	WastageFraction float64     `json:"wastage_fraction"`
}

// SteelMasses returns the steel mass per diameter for one design, in kg.
// Main bars run the full span; stirrup mass comes from the hoop perimeter
// times the hoop count over the span.
func SteelMasses(d Design, table pricing.Table) map[section.BarDia]float64 {
	masses := map[section.BarDia]float64{}

	addGroups := func(groups []section.BarGroup) {
		for _, g := range groups {
			masses[g.Dia] += table.SteelMass(g.Area(), d.Geometry.Span)
		}
	}
	addGroups(d.Layout.Bottom)
	addGroups(d.Layout.Top)

	s := d.Layout.Stirrup
	if s.Dia > 0 && s.Spacing > 0 && d.Geometry.Span > 0 {
		perimeter := 2 * ((d.Geometry.Width - 2*d.Geometry.Cover) + (d.Geometry.Depth - 2*d.Geometry.Cover))
		count := float64(int(d.Geometry.Span/s.Spacing)) + 1
		masses[s.Dia] += table.SteelMass(s.Dia.Area(), perimeter*count)
	}
	return masses
}

// SteelCost returns the steel cost of one design, before wastage.
func SteelCost(d Design, table pricing.Table) float64 {
	var total float64
	for _, m := range SteelMasses(d, table) {
		total += m * table.SteelPerKg
	}
	return total
}

// TotalCost returns the combined steel and concrete cost of one design,
// before wastage.
func TotalCost(d Design, table pricing.Table) float64 {
	return SteelCost(d, table) + d.Geometry.ConcreteVolume()*table.ConcretePrice(d.Material.Concrete)
}

// Carbon returns the embodied carbon of one design in kgCO₂e.
func Carbon(d Design, table pricing.Table) float64 {
	var mass float64
	for _, m := range SteelMasses(d, table) {
		mass += m
	}
	return mass*table.CarbonSteelPerKg + d.Geometry.ConcreteVolume()*table.ConcreteCarbon(d.Material.Concrete)
}

// Takeoff aggregates quantities and costs over the given designs,
// applying the wastage fraction to all material quantities.
func Takeoff(designs []Design, table pricing.Table, wastage float64) (*Result, error) {
	if len(designs) == 0 {
		return nil, section.Errorf("takeoff needs at least one design")
	}
	if wastage < 0 || wastage >= 1 {
		return nil, section.Errorf("wastage fraction must be in [0, 1), got %.3f", wastage)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	factor := 1 + wastage
	byDia := map[section.BarDia]float64{}
	result := &Result{WastageFraction: wastage}

	for _, d := range designs {
		if err := d.Geometry.Validate(); err != nil {
			return nil, err
		}
		if err := d.Material.Validate(); err != nil {
			return nil, err
		}
		if err := d.Layout.Validate(); err != nil {
			return nil, err
		}

		for dia, m := range SteelMasses(d, table) {
			byDia[dia] += m * factor
		}
		vol := d.Geometry.ConcreteVolume() * factor
		result.ConcreteVolume += vol
		result.ConcreteCost += vol * table.ConcretePrice(d.Material.Concrete)
		result.CarbonKg += d.Geometry.ConcreteVolume() * factor * table.ConcreteCarbon(d.Material.Concrete)
	}

	dias := make([]section.BarDia, 0, len(byDia))
	for dia := range byDia {
		dias = append(dias, dia)
	}
	sort.Slice(dias, func(i, j int) bool { return dias[i] < dias[j] })

	for _, dia := range dias {
		mass := byDia[dia]
		cost := mass * table.SteelPerKg
		result.Items = append(result.Items, SteelItem{Dia: dia, MassKg: mass, Cost: cost})
		result.SteelMassKg += mass
		result.SteelCost += cost
	}
	result.CarbonKg += result.SteelMassKg * table.CarbonSteelPerKg
	result.TotalCost = result.SteelCost + result.ConcreteCost

	return result, nil
}
