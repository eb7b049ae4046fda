package election_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pabukit/election"
)

// TestNewInstance_Validation verifies the constructor's sentinel errors
// for empty names, duplicates, negative costs and negative budgets.
func TestNewInstance_Validation(t *testing.T) {
	_, err := election.NewInstance([]election.Project{{Name: "", Cost: 1}}, 3)
	assert.ErrorIs(t, err, election.ErrEmptyProjectName, "empty name must error")

	_, err = election.NewInstance([]election.Project{
		{Name: "a", Cost: 1},
		{Name: "a", Cost: 2},
	}, 3)
	assert.ErrorIs(t, err, election.ErrDuplicateProject, "duplicate name must error")

	_, err = election.NewInstance([]election.Project{{Name: "a", Cost: -1}}, 3)
	assert.ErrorIs(t, err, election.ErrNegativeCost, "negative cost must error")

	_, err = election.NewInstance(nil, -1)
	assert.ErrorIs(t, err, election.ErrNegativeBudget, "negative budget must error")
}

// TestInstance_ProjectsSorted verifies that Projects() enumerates the
// catalog in ascending name order regardless of construction order.
func TestInstance_ProjectsSorted(t *testing.T) {
	inst, err := election.NewInstance([]election.Project{
		{Name: "c", Cost: 2},
		{Name: "a", Cost: 1},
		{Name: "b", Cost: 3},
	}, 5)
	require.NoError(t, err)

	names := make([]string, 0, inst.ProjectCount())
	for _, p := range inst.Projects() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names, "catalog must be sorted by name")

	p, ok := inst.Project("b")
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Cost)
}

// TestInstance_Feasibility verifies IsFeasible and IsExhaustive against
// hand-computed bundles.
func TestInstance_Feasibility(t *testing.T) {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 3}
	c := election.Project{Name: "c", Cost: 2}
	inst, err := election.NewInstance([]election.Project{a, b, c}, 3)
	require.NoError(t, err)

	assert.True(t, inst.IsFeasible(election.BudgetAllocation{a, c}), "cost 3 fits limit 3")
	assert.False(t, inst.IsFeasible(election.BudgetAllocation{b, a}), "cost 4 exceeds limit 3")

	assert.True(t, inst.Affordable(election.BudgetAllocation{a}, c), "c fits the leftover 2")
	assert.False(t, inst.Affordable(election.BudgetAllocation{a}, b), "b exceeds the leftover 2")

	assert.True(t, inst.IsExhaustive(election.BudgetAllocation{a, c}), "nothing else fits after a+c")
	assert.False(t, inst.IsExhaustive(election.BudgetAllocation{a}), "c still fits after a")
	assert.True(t, inst.IsExhaustive(election.BudgetAllocation{b}), "leftover 0 fits nothing")
}

// TestInstance_BudgetAllocations verifies the feasible-set enumeration:
// every result feasible, sorted, with the empty allocation included.
func TestInstance_BudgetAllocations(t *testing.T) {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 3}
	c := election.Project{Name: "c", Cost: 2}
	inst, err := election.NewInstance([]election.Project{a, b, c}, 3)
	require.NoError(t, err)

	allocs := inst.BudgetAllocations()
	// {}, {a}, {a,c}, {b}, {c} are the feasible bundles under limit 3.
	require.Len(t, allocs, 5)
	assert.Equal(t, election.BudgetAllocation{}, allocs[0], "empty allocation enumerated first")
	for _, alloc := range allocs {
		assert.True(t, inst.IsFeasible(alloc), "enumerated bundle %v must be feasible", alloc)
	}
	for i := 1; i < len(allocs); i++ {
		assert.True(t, allocs[i-1].Less(allocs[i]), "enumeration must be strictly sorted")
	}
}

// TestInstance_WithBudgetLimit verifies the rescoped view shares the
// catalog but applies its own limit.
func TestInstance_WithBudgetLimit(t *testing.T) {
	a := election.Project{Name: "a", Cost: 2}
	inst, err := election.NewInstance([]election.Project{a}, 1)
	require.NoError(t, err)

	assert.False(t, inst.IsFeasible(election.BudgetAllocation{a}))

	wider := inst.WithBudgetLimit(2)
	assert.True(t, wider.IsFeasible(election.BudgetAllocation{a}))
	assert.Equal(t, 1, wider.ProjectCount(), "catalog is shared")
	assert.Equal(t, 1.0, inst.BudgetLimit, "original limit untouched")
}

// TestBudgetAllocation_Ordering verifies content-based Equal and the
// lexicographic Less used as the rules' tie-break order.
func TestBudgetAllocation_Ordering(t *testing.T) {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 2}
	c := election.Project{Name: "c", Cost: 1}

	assert.True(t, election.BudgetAllocation{b, a}.Equal(election.BudgetAllocation{a, b}),
		"equality ignores element order")
	assert.False(t, election.BudgetAllocation{a}.Equal(election.BudgetAllocation{a, b}))

	assert.True(t, election.BudgetAllocation{a}.Less(election.BudgetAllocation{a, b}),
		"prefix orders before its extension")
	assert.True(t, election.BudgetAllocation{a, b}.Less(election.BudgetAllocation{a, c}),
		"b orders before c")
	assert.False(t, election.BudgetAllocation{a}.Less(election.BudgetAllocation{a}))
}

// TestBudgetAllocation_SetOps verifies Contains, Union and TotalCost.
func TestBudgetAllocation_SetOps(t *testing.T) {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 2}

	alloc := election.BudgetAllocation{a}
	assert.True(t, alloc.Contains(a))
	assert.False(t, alloc.Contains(b))

	union := alloc.Union(election.BudgetAllocation{a, b})
	assert.True(t, union.Equal(election.BudgetAllocation{a, b}), "union deduplicates")
	assert.Equal(t, 3.0, election.TotalCost(union))
	assert.True(t, alloc.Equal(election.BudgetAllocation{a}), "receiver untouched")
}

// TestSortAllocations verifies sorting plus dedup of an outcome set.
func TestSortAllocations(t *testing.T) {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 2}

	out := election.SortAllocations([]election.BudgetAllocation{
		{b, a},
		{a, b},
		{a},
	})
	require.Len(t, out, 2, "duplicate content collapses")
	assert.True(t, out[0].Equal(election.BudgetAllocation{a}))
	assert.True(t, out[1].Equal(election.BudgetAllocation{a, b}))
}
