package satisfaction

import (
	"github.com/katalvlaran/pabukit/ballot"
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
)

// Measure scores projects and bundles for one voter. Implementations hold
// a read-only view of their election data and never mutate it.
type Measure interface {
	// ProjectSatisfaction returns the voter's utility for funding project
	// on top of bundle. The project's own membership in bundle is ignored.
	ProjectSatisfaction(project election.Project, bundle election.BudgetAllocation) float64

	// BundleSatisfaction returns the voter's utility for the funded bundle
	// as a whole.
	BundleSatisfaction(bundle election.BudgetAllocation) float64
}

// ProjectFunc computes a single project's satisfaction for one ballot
// given the funded bundle.
type ProjectFunc func(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	project election.Project,
	bundle election.BudgetAllocation,
) float64

// BundleFunc computes a whole bundle's satisfaction for one ballot.
type BundleFunc func(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	bundle election.BudgetAllocation,
) float64

// Builder constructs a Measure for one ballot of a profile. It is the
// value rules accept when asked to build satisfaction themselves.
type Builder func(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
) Measure

// InteractionSatisfaction is a Measure bound to one (Instance, Profile,
// Ballot) triple plus two pluggable scoring functions. Queries delegate
// straight to the functions; nothing is cached between calls.
type InteractionSatisfaction struct {
	inst      *election.Instance
	prof      *profile.InteractionProfile
	ballot    *ballot.InteractionBallot
	projectFn ProjectFunc
	bundleFn  BundleFunc
}

// NewInteractionSatisfaction binds the triple to the given scorer pair.
func NewInteractionSatisfaction(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	projectFn ProjectFunc,
	bundleFn BundleFunc,
) *InteractionSatisfaction {
	return &InteractionSatisfaction{
		inst:      inst,
		prof:      prof,
		ballot:    b,
		projectFn: projectFn,
		bundleFn:  bundleFn,
	}
}

// ProjectSatisfaction delegates to the bound project scorer.
func (s *InteractionSatisfaction) ProjectSatisfaction(project election.Project, bundle election.BudgetAllocation) float64 {
	return s.projectFn(s.inst, s.prof, s.ballot, project, bundle)
}

// BundleSatisfaction delegates to the bound bundle scorer.
func (s *InteractionSatisfaction) BundleSatisfaction(bundle election.BudgetAllocation) float64 {
	return s.bundleFn(s.inst, s.prof, s.ballot, bundle)
}

// CardinalityWithInteraction builds the interaction-aware cardinality
// measure: marginal utility at the funded count for projects, cumulative
// per-group prefix sums for bundles.
func CardinalityWithInteraction(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
) Measure {
	return NewInteractionSatisfaction(inst, prof, b, projectInteractionCardinality, bundleInteractionCardinality)
}

// AdditiveIgnoringInteraction builds the baseline measure that ignores
// interaction effects: every project scores its context-free 0-th entry.
func AdditiveIgnoringInteraction(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
) Measure {
	return NewInteractionSatisfaction(inst, prof, b, projectAdditiveCardinality, bundleAdditiveCardinality)
}

// projectInteractionCardinality scores one project as the marginal utility
// at the number of its already-funded group members (self excluded).
// Projects the ballot does not score contribute 0.
func projectInteractionCardinality(
	_ *election.Instance,
	_ *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	project election.Project,
	bundle election.BudgetAllocation,
) float64 {
	group, utils, err := b.Lookup(project)
	if err != nil {
		return 0
	}

	return utils[fundedCount(group, bundle, project)]
}

// bundleInteractionCardinality scores a bundle as, per group touched by
// the bundle, the cumulative sum of the first |group ∩ bundle| vector
// entries. A group with three funded members contributes
// vector[0]+vector[1]+vector[2], independent of funding order.
func bundleInteractionCardinality(
	_ *election.Instance,
	_ *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	bundle election.BudgetAllocation,
) float64 {
	type groupUse struct {
		utils []float64
		count int
	}
	groups := make(map[election.Project]*groupUse)
	seen := make(map[election.Project]struct{}, len(bundle))
	for _, project := range bundle {
		if _, dup := seen[project]; dup {
			continue
		}
		seen[project] = struct{}{}
		group, utils, err := b.Lookup(project)
		if err != nil {
			continue
		}
		// Groups partition the ballot, so the smallest member identifies one.
		// Distinct projects may share a name, so the full Project is the key.
		use, ok := groups[group[0]]
		if !ok {
			use = &groupUse{utils: utils}
			groups[group[0]] = use
		}
		use.count++
	}

	var sat float64
	for _, use := range groups {
		for k := 0; k < use.count; k++ {
			sat += use.utils[k]
		}
	}

	return sat
}

// projectAdditiveCardinality scores one project as its context-free 0-th
// vector entry, ignoring which other projects are funded.
func projectAdditiveCardinality(
	_ *election.Instance,
	_ *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	project election.Project,
	_ election.BudgetAllocation,
) float64 {
	_, utils, err := b.Lookup(project)
	if err != nil {
		return 0
	}

	return utils[0]
}

// bundleAdditiveCardinality scores a bundle as the plain sum of its
// projects' context-free scores.
func bundleAdditiveCardinality(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	b *ballot.InteractionBallot,
	bundle election.BudgetAllocation,
) float64 {
	var sat float64
	for _, project := range bundle {
		sat += projectAdditiveCardinality(inst, prof, b, project, bundle)
	}

	return sat
}

// fundedCount returns |group ∩ bundle|, not counting self; always a valid
// index into the group's utility vector.
func fundedCount(group []election.Project, bundle election.BudgetAllocation, self election.Project) int {
	count := 0
	for _, member := range group {
		if member != self && bundle.Contains(member) {
			count++
		}
	}

	return count
}
