package satisfaction

import (
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
)

// Profile is a precomputed satisfaction profile: one Measure per ballot,
// in profile order. Rules accept it in place of a Builder; the two paths
// are observationally equivalent.
type Profile struct {
	measures []Measure
}

// NewProfile builds one Measure per ballot of prof using build.
func NewProfile(inst *election.Instance, prof *profile.InteractionProfile, build Builder) *Profile {
	sp := &Profile{measures: make([]Measure, 0, prof.Len())}
	for _, b := range prof.Ballots() {
		sp.measures = append(sp.measures, build(inst, prof, b))
	}

	return sp
}

// NewProfileFromMeasures wraps an explicit measure list, in ballot order.
func NewProfileFromMeasures(measures []Measure) *Profile {
	sp := &Profile{measures: make([]Measure, len(measures))}
	copy(sp.measures, measures)

	return sp
}

// Len returns the number of measures (= ballots) in the profile.
func (sp *Profile) Len() int { return len(sp.measures) }

// Measures returns a copy of the measure list, in ballot order.
func (sp *Profile) Measures() []Measure {
	out := make([]Measure, len(sp.measures))
	copy(out, sp.measures)

	return out
}

// TotalProjectSatisfaction sums ProjectSatisfaction over all voters.
func (sp *Profile) TotalProjectSatisfaction(project election.Project, bundle election.BudgetAllocation) float64 {
	var total float64
	for _, m := range sp.measures {
		total += m.ProjectSatisfaction(project, bundle)
	}

	return total
}

// TotalBundleSatisfaction sums BundleSatisfaction over all voters.
func (sp *Profile) TotalBundleSatisfaction(bundle election.BudgetAllocation) float64 {
	var total float64
	for _, m := range sp.measures {
		total += m.BundleSatisfaction(bundle)
	}

	return total
}
