package election

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Instance is one election: the set of fundable projects plus the
// budget limit. The project catalog is immutable after construction;
// all enumeration surfaces return sorted results.
type Instance struct {
	// BudgetLimit is the nominal spending cap of the election.
	BudgetLimit float64

	projects map[string]Project
	order    []Project // sorted by Project.Less
}

// NewInstance builds an Instance from a project list and a budget limit.
// Projects must carry unique, non-empty names and non-negative costs.
//
// Errors:
//   - ErrEmptyProjectName, ErrDuplicateProject, ErrNegativeCost wrap the
//     offending project name.
//   - ErrNegativeBudget when budgetLimit < 0.
func NewInstance(projects []Project, budgetLimit float64) (*Instance, error) {
	if budgetLimit < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeBudget, budgetLimit)
	}

	inst := &Instance{
		BudgetLimit: budgetLimit,
		projects:    make(map[string]Project, len(projects)),
		order:       make([]Project, 0, len(projects)),
	}
	for _, p := range projects {
		if p.Name == "" {
			return nil, ErrEmptyProjectName
		}
		if p.Cost < 0 {
			return nil, fmt.Errorf("%w: project %q", ErrNegativeCost, p.Name)
		}
		if _, exists := inst.projects[p.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProject, p.Name)
		}
		inst.projects[p.Name] = p
		inst.order = append(inst.order, p)
	}
	sort.Slice(inst.order, func(i, j int) bool { return inst.order[i].Less(inst.order[j]) })

	return inst, nil
}

// WithBudgetLimit returns a view of the instance with the same project
// catalog and a different budget limit. The catalog is shared, not copied;
// escalation combinators use this to probe intermediate limits.
func (inst *Instance) WithBudgetLimit(limit float64) *Instance {
	return &Instance{
		BudgetLimit: limit,
		projects:    inst.projects,
		order:       inst.order,
	}
}

// Projects returns all projects sorted ascending.
// The returned slice is a copy and safe to retain.
func (inst *Instance) Projects() []Project {
	out := make([]Project, len(inst.order))
	copy(out, inst.order)

	return out
}

// Project looks up a project by name.
func (inst *Instance) Project(name string) (Project, bool) {
	p, ok := inst.projects[name]

	return p, ok
}

// ProjectCount returns the number of projects in the instance.
func (inst *Instance) ProjectCount() int { return len(inst.order) }

// IsFeasible reports whether alloc fits within the budget limit
// (up to CostEpsilon).
func (inst *Instance) IsFeasible(alloc BudgetAllocation) bool {
	return TotalCost(alloc) <= inst.BudgetLimit+CostEpsilon
}

// Affordable reports whether funding p on top of alloc stays within the
// budget limit (up to CostEpsilon).
func (inst *Instance) Affordable(alloc BudgetAllocation, p Project) bool {
	return TotalCost(alloc)+p.Cost <= inst.BudgetLimit+CostEpsilon
}

// IsExhaustive reports whether no unfunded project of the instance fits
// within the budget left by alloc. Exhaustive allocations are the maximal
// feasible ones.
func (inst *Instance) IsExhaustive(alloc BudgetAllocation) bool {
	for _, p := range inst.order {
		if alloc.Contains(p) {
			continue
		}
		if inst.Affordable(alloc, p) {
			return false
		}
	}

	return true
}

// BudgetAllocations enumerates every feasible allocation of the instance,
// the empty one included, sorted by BudgetAllocation.Less. The enumeration
// walks all k-subsets of the project catalog for k = 0..n, so it is meant
// for research-scale instances, not large elections.
func (inst *Instance) BudgetAllocations() []BudgetAllocation {
	n := len(inst.order)
	feasible := []BudgetAllocation{{}}
	for k := 1; k <= n; k++ {
		for _, idx := range combin.Combinations(n, k) {
			alloc := make(BudgetAllocation, 0, k)
			for _, i := range idx {
				alloc = append(alloc, inst.order[i])
			}
			if inst.IsFeasible(alloc) {
				feasible = append(feasible, alloc)
			}
		}
	}

	return SortAllocations(feasible)
}
