// Package rules defines the execution contract shared by all budget
// allocation rules, two elementary welfare rules, and the higher-order
// combinators that compose rules into completion procedures.
//
// # Contract
//
// A Rule is a deterministic function
//
//	func(inst, prof, opts) ([]election.BudgetAllocation, error)
//
// over one election. The returned slice is the irresolute outcome set,
// sorted and deduplicated; with opts.Resolute it holds exactly one
// element, chosen by the rule's own tie-break, and that element is always
// a member of the irresolute set for the same inputs. Every returned
// allocation is feasible (total cost within the instance's budget limit)
// and echoes opts.InitialAllocation; remaining budget and marginal
// utilities are accounted relative to it. Rules accept satisfaction
// either as a Builder (opts.SatBuilder) or precomputed
// (opts.SatProfile) — the two are observationally equivalent. Degenerate
// invocations (no projects, no ballots) fail with ErrEmptyElection
// rather than silently producing an empty allocation.
//
// # Rules
//
//   - GreedyUtilitarianWelfare — exhaustive greedy search: repeatedly
//     funds the affordable project with the highest marginal total
//     satisfaction until nothing fits the leftover budget.
//   - MaxUtilitarianWelfare — full search for the feasible allocation
//     maximizing total bundle satisfaction.
//
// # Combinators
//
//   - ExhaustionByBudgetIncrease — re-invokes a base rule under a budget
//     limit raised step by step (clamped to the nominal limit), feeding
//     each outcome forward as the next initial allocation, until an
//     iteration adds nothing new or the nominal limit is reached. Larger
//     steps yield coarser, still feasible, results.
//   - CompletionByRuleCombination — invokes a rule sequence in order,
//     threading each outcome as the next rule's initial allocation. Chain
//     entries may themselves be combinators.
//
// Whether combinators follow one tie-broken branch per step or explore
// the Cartesian product of upstream irresolute branches is an explicit
// choice: opts.BranchMode selects BranchRepresentative (default) or
// BranchExhaustive.
//
// Errors:
//
//	ErrEmptyElection     - nil/empty instance or profile.
//	ErrNoSatisfaction    - neither SatBuilder nor SatProfile supplied.
//	ErrInfeasibleInitial - initial allocation exceeds the budget limit.
//	ErrNoBudgetStep      - escalation invoked without a positive step.
//	ErrParamMismatch     - chained rule and option counts differ.
package rules
