package rules

import (
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
)

// ExhaustionByBudgetIncrease wraps a base rule into a completion rule that
// escalates the budget: the base rule runs under an effective limit raised
// by budgetStep per iteration (clamped to the nominal limit), with the
// previous iteration's outcome threaded in as the next initial allocation.
// The loop stops as soon as an iteration adds nothing new, or once the
// nominal limit has been probed; every intermediate outcome is feasible
// for the nominal limit by construction, so larger steps simply yield
// coarser results.
//
// ruleOpts carries the base rule's own parameters (satisfaction, tracing);
// its Resolute, InitialAllocation and BranchMode fields are overridden by
// the combinator. The outer invocation's options control arity and branch
// semantics: BranchRepresentative threads one tie-broken outcome per
// iteration, BranchExhaustive explores every irresolute branch of every
// iteration and deduplicates the final set.
//
// A zero or negative budgetStep fails with ErrNoBudgetStep at invocation.
func ExhaustionByBudgetIncrease(rule Rule, ruleOpts Options, budgetStep float64) Rule {
	return func(inst *election.Instance, prof *profile.InteractionProfile, opts Options) ([]election.BudgetAllocation, error) {
		if budgetStep <= 0 {
			return nil, ErrNoBudgetStep
		}
		if err := validateElection(inst, prof); err != nil {
			return nil, err
		}
		initial, err := checkedInitial(inst, opts)
		if err != nil {
			return nil, err
		}

		// The first probe must at least cover the initial allocation, or the
		// base rule would reject its own starting point.
		start := election.TotalCost(initial) + budgetStep

		var outcomes []election.BudgetAllocation
		if err = escalate(inst, prof, rule, ruleOpts, opts, initial, start, budgetStep, &outcomes); err != nil {
			return nil, err
		}

		return finalize(opts, outcomes), nil
	}
}

// escalate runs one escalation step at the given effective limit and
// recurses until the outcome stabilizes or the nominal limit is reached.
func escalate(
	inst *election.Instance,
	prof *profile.InteractionProfile,
	rule Rule,
	ruleOpts Options,
	outer Options,
	prev election.BudgetAllocation,
	effective, budgetStep float64,
	outcomes *[]election.BudgetAllocation,
) error {
	nominal := inst.BudgetLimit
	if effective > nominal {
		effective = nominal
	}

	stepOpts := ruleOpts
	stepOpts.InitialAllocation = prev
	stepOpts.Resolute = outer.BranchMode == BranchRepresentative

	outer.trace("exhaustion: probing limit %g (spent %g)", effective, election.TotalCost(prev))
	outs, err := rule(inst.WithBudgetLimit(effective), prof, stepOpts)
	if err != nil {
		return err
	}

	for _, out := range outs {
		if out.Equal(prev) || effective >= nominal {
			*outcomes = append(*outcomes, out)

			continue
		}
		if err = escalate(inst, prof, rule, ruleOpts, outer, out, effective+budgetStep, budgetStep, outcomes); err != nil {
			return err
		}
	}

	return nil
}
