package section

// Demand holds the factored design actions a section must resist. Both
// are exogenous: computed upstream by a structural-analysis tool, never
// by this engine.
type Demand struct {
	Moment float64 `json:"moment"` // factored moment Mu, kN·m
	Shear  float64 `json:"shear"`  // factored shear Vu, kN
}

// Demand sanity caps. A beam moment in the tens of thousands of kN·m is a
// unit mistake, not a building.
const (
	maxPlausibleMoment = 50000.0 // kN·m
	maxPlausibleShear  = 50000.0 // kN
)

// NewDemand builds a validated Demand.
func NewDemand(moment, shear float64) (Demand, error) {
	d := Demand{Moment: moment, Shear: shear}
	if err := d.Validate(); err != nil {
		return Demand{}, err
	}
	return d, nil
}

// Validate rejects negative or implausibly large actions.
func (d Demand) Validate() error {
	if d.Moment < 0 || d.Shear < 0 {
		return Errorf("demand must not be negative: Mu=%.2f kN·m, Vu=%.2f kN", d.Moment, d.Shear)
	}
	if d.Moment > maxPlausibleMoment {
		return Errorf("moment %.2f kN·m exceeds the plausible range; check units", d.Moment)
	}
	if d.Shear > maxPlausibleShear {
		return Errorf("shear %.2f kN exceeds the plausible range; check units", d.Shear)
	}
	return nil
}
