package rules

import (
	"fmt"

	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
)

// CompletionByRuleCombination chains an ordered rule sequence into one
// rule: each link runs with the previous link's outcome as its initial
// allocation, so later rules complete what earlier rules left unfunded.
// A link may itself be a combinator, which nests recursively.
//
// ruleOpts supplies one parameter set per link (satisfaction, tracing);
// each link's Resolute and InitialAllocation fields are overridden by the
// combinator. The outer invocation controls arity and branch semantics:
// BranchRepresentative threads one tie-broken outcome through the chain,
// BranchExhaustive carries every irresolute branch of every link through
// the rest of the chain and deduplicates the final set.
//
// A chain with no rules, or with ruleOpts count differing from the rule
// count, fails with ErrParamMismatch at invocation.
func CompletionByRuleCombination(sequence []Rule, ruleOpts []Options) Rule {
	return func(inst *election.Instance, prof *profile.InteractionProfile, opts Options) ([]election.BudgetAllocation, error) {
		if len(sequence) == 0 || len(sequence) != len(ruleOpts) {
			return nil, fmt.Errorf("%w: %d rules, %d option sets",
				ErrParamMismatch, len(sequence), len(ruleOpts))
		}
		if err := validateElection(inst, prof); err != nil {
			return nil, err
		}
		initial, err := checkedInitial(inst, opts)
		if err != nil {
			return nil, err
		}

		frontier := []election.BudgetAllocation{initial}
		for i, rule := range sequence {
			linkOpts := ruleOpts[i]
			linkOpts.Resolute = opts.BranchMode == BranchRepresentative

			next := make([]election.BudgetAllocation, 0, len(frontier))
			for _, branch := range frontier {
				linkOpts.InitialAllocation = branch
				opts.trace("completion: link %d from %v", i, branch)
				outs, err := rule(inst, prof, linkOpts)
				if err != nil {
					return nil, err
				}
				next = append(next, outs...)
			}
			frontier = election.SortAllocations(next)
		}

		return finalize(opts, frontier), nil
	}
}
