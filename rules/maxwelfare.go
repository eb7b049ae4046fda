package rules

import (
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
)

// MaxUtilitarianWelfare is the exact welfare rule: it enumerates every
// feasible allocation extending the initial one and returns those with the
// maximal total bundle satisfaction. The irresolute outcome is the full
// argmax set (scores within ScoreEpsilon count as tied); the resolute
// outcome is its lexicographically smallest member.
//
// The search is exhaustive over instance.BudgetAllocations, so it is meant
// for research-scale instances.
func MaxUtilitarianWelfare(inst *election.Instance, prof *profile.InteractionProfile, opts Options) ([]election.BudgetAllocation, error) {
	if err := validateElection(inst, prof); err != nil {
		return nil, err
	}
	sat, err := resolveSatisfaction(inst, prof, opts)
	if err != nil {
		return nil, err
	}
	initial, err := checkedInitial(inst, opts)
	if err != nil {
		return nil, err
	}

	var (
		best      []election.BudgetAllocation
		bestScore float64
	)
	for _, alloc := range inst.BudgetAllocations() {
		if !contains(alloc, initial) {
			continue
		}
		score := sat.TotalBundleSatisfaction(alloc)
		switch {
		case len(best) == 0 || score > bestScore+ScoreEpsilon:
			opts.trace("maxwelfare: new best %v (welfare %g)", alloc, score)
			best = append(best[:0], alloc)
			bestScore = score
		case score >= bestScore-ScoreEpsilon:
			best = append(best, alloc)
		}
	}

	return finalize(opts, best), nil
}

// contains reports whether alloc funds every project of subset.
func contains(alloc, subset election.BudgetAllocation) bool {
	for _, p := range subset {
		if !alloc.Contains(p) {
			return false
		}
	}

	return true
}
