package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
	"github.com/katalvlaran/pabukit/satisfaction"
)

// ScoreEpsilon is the tolerance used when comparing satisfaction scores
// for ties.
const ScoreEpsilon = 1e-9

// Sentinel errors for rule invocation and combinator configuration.
var (
	// ErrEmptyElection indicates a rule invoked on a nil or empty instance
	// or profile.
	ErrEmptyElection = errors.New("rules: empty instance or profile")

	// ErrNoSatisfaction indicates that neither a satisfaction builder nor a
	// precomputed satisfaction profile was supplied.
	ErrNoSatisfaction = errors.New("rules: no satisfaction builder or profile supplied")

	// ErrInfeasibleInitial indicates an initial allocation already exceeding
	// the budget limit.
	ErrInfeasibleInitial = errors.New("rules: initial allocation exceeds the budget limit")

	// ErrNoBudgetStep indicates a budget-escalation combinator without a
	// positive step size.
	ErrNoBudgetStep = errors.New("rules: budget step must be positive")

	// ErrParamMismatch indicates a rule chain whose rule and option counts
	// differ (or an empty chain).
	ErrParamMismatch = errors.New("rules: rule and option counts differ")
)

// BranchMode selects how combinators compose irresolute outcomes across
// steps or chain links.
type BranchMode int

const (
	// BranchRepresentative threads one tie-broken representative through
	// every step. This is the default.
	BranchRepresentative BranchMode = iota

	// BranchExhaustive explores the full Cartesian product of upstream
	// irresolute branches, deduplicating the final outcome set.
	BranchExhaustive
)

// Rule is the uniform calling convention every allocation rule satisfies.
// See the package documentation for the full contract.
type Rule func(inst *election.Instance, prof *profile.InteractionProfile, opts Options) ([]election.BudgetAllocation, error)

// Options carries the shared parameters of a rule invocation.
//
// Exactly one of SatBuilder and SatProfile must be set; when both are,
// the precomputed SatProfile wins.
type Options struct {
	// SatBuilder constructs one satisfaction measure per ballot.
	SatBuilder satisfaction.Builder

	// SatProfile is a precomputed satisfaction profile; observationally
	// equivalent to letting the rule build one from SatBuilder.
	SatProfile *satisfaction.Profile

	// Resolute requests a single tie-broken outcome.
	Resolute bool

	// InitialAllocation is echoed in every result; budget and utility
	// accounting is relative to it.
	InitialAllocation election.BudgetAllocation

	// BranchMode selects combinator branch semantics.
	BranchMode BranchMode

	// Trace, when non-nil, receives diagnostic lines during the search.
	Trace func(format string, args ...any)
}

// DefaultOptions returns the deterministic defaults: resolute outcome,
// no initial allocation, representative branch mode, no tracing.
func DefaultOptions() Options {
	return Options{Resolute: true}
}

// trace emits a diagnostic line when tracing is enabled.
func (o Options) trace(format string, args ...any) {
	if o.Trace != nil {
		o.Trace(format, args...)
	}
}

// validateElection rejects degenerate invocations: a nil instance,
// an instance without projects, or a profile without ballots.
func validateElection(inst *election.Instance, prof *profile.InteractionProfile) error {
	if inst == nil || inst.ProjectCount() == 0 {
		return fmt.Errorf("%w: no projects", ErrEmptyElection)
	}
	if prof == nil || prof.Len() == 0 {
		return fmt.Errorf("%w: no ballots", ErrEmptyElection)
	}

	return nil
}

// resolveSatisfaction returns the satisfaction profile a rule should score
// against: the precomputed one when supplied, otherwise one built from the
// builder.
func resolveSatisfaction(inst *election.Instance, prof *profile.InteractionProfile, opts Options) (*satisfaction.Profile, error) {
	if opts.SatProfile != nil {
		return opts.SatProfile, nil
	}
	if opts.SatBuilder == nil {
		return nil, ErrNoSatisfaction
	}

	return satisfaction.NewProfile(inst, prof, opts.SatBuilder), nil
}

// checkedInitial validates and normalizes the initial allocation.
func checkedInitial(inst *election.Instance, opts Options) (election.BudgetAllocation, error) {
	initial := opts.InitialAllocation.Clone()
	if initial == nil {
		initial = election.BudgetAllocation{}
	}
	if !inst.IsFeasible(initial) {
		return nil, fmt.Errorf("%w: cost %g over limit %g",
			ErrInfeasibleInitial, election.TotalCost(initial), inst.BudgetLimit)
	}

	return initial, nil
}

// finalize normalizes an outcome set per the contract: sorted,
// deduplicated, and cut to the single tie-broken representative when the
// invocation is resolute.
func finalize(opts Options, allocs []election.BudgetAllocation) []election.BudgetAllocation {
	out := election.SortAllocations(allocs)
	if opts.Resolute && len(out) > 1 {
		out = out[:1]
	}

	return out
}
