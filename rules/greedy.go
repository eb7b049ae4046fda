package rules

import (
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
	"github.com/katalvlaran/pabukit/satisfaction"
)

// GreedyUtilitarianWelfare is the sequential welfare rule: starting from
// the initial allocation, it repeatedly funds the affordable project with
// the highest marginal total satisfaction until no project fits the
// leftover budget, so every outcome is exhaustive.
//
// Tie handling: projects whose marginal satisfaction is within
// ScoreEpsilon of the best are tied. A resolute invocation funds the
// smallest tied candidate at every step; an irresolute one branches on
// every tied candidate and collects all exhausted leaves. The resolute
// path is one of those branches, so its outcome is always a member of the
// irresolute set.
func GreedyUtilitarianWelfare(inst *election.Instance, prof *profile.InteractionProfile, opts Options) ([]election.BudgetAllocation, error) {
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

	var leaves []election.BudgetAllocation
	greedyBranch(inst, sat, opts, initial, &leaves)

	return finalize(opts, leaves), nil
}

// greedyBranch extends alloc greedily, branching on satisfaction ties,
// and records every exhausted allocation in leaves.
func greedyBranch(
	inst *election.Instance,
	sat *satisfaction.Profile,
	opts Options,
	alloc election.BudgetAllocation,
	leaves *[]election.BudgetAllocation,
) {
	best := make([]election.Project, 0, 1)
	bestScore := 0.0
	for _, p := range inst.Projects() {
		if alloc.Contains(p) || !inst.Affordable(alloc, p) {
			continue
		}
		score := sat.TotalProjectSatisfaction(p, alloc)
		switch {
		case len(best) == 0 || score > bestScore+ScoreEpsilon:
			best = append(best[:0], p)
			bestScore = score
		case score >= bestScore-ScoreEpsilon:
			best = append(best, p)
		}
	}

	// No affordable candidate left: the branch is exhausted.
	if len(best) == 0 {
		*leaves = append(*leaves, alloc)

		return
	}

	if opts.Resolute || len(best) == 1 {
		// Projects() is sorted, so best[0] is the smallest tied candidate.
		opts.trace("greedy: fund %s (marginal %g)", best[0], bestScore)
		greedyBranch(inst, sat, opts, append(alloc.Clone(), best[0]), leaves)

		return
	}

	for _, p := range best {
		opts.trace("greedy: branch on %s (marginal %g)", p, bestScore)
		greedyBranch(inst, sat, opts, append(alloc.Clone(), p), leaves)
	}
}
