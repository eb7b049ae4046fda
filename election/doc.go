// Package election defines the identity layer of a participatory-budgeting
// election: Project, Instance and BudgetAllocation.
//
// A Project is an opaque, comparable identity with a cost. An Instance owns
// the set of projects up for election together with the budget limit, and
// answers feasibility questions about candidate outcomes. A BudgetAllocation
// is an ordered collection of funded projects, compared by sorted content.
//
// Determinism:
//   - Projects() and BudgetAllocations() return sorted results, so every
//     enumeration surface is stable across runs.
//
// Numerics:
//   - Costs and budgets are float64. Feasibility comparisons tolerate a
//     drift of CostEpsilon, so a bundle whose cost equals the limit up to
//     rounding still counts as affordable.
//
// Errors:
//
//	ErrEmptyProjectName  - project with an empty name.
//	ErrDuplicateProject  - two projects sharing one name.
//	ErrNegativeCost      - project with a negative cost.
//	ErrNegativeBudget    - instance with a negative budget limit.
package election
