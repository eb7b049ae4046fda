package election

import "sort"

// BudgetAllocation is an ordered collection of funded projects.
// Two allocations are equal when their sorted contents coincide;
// the element order itself carries no meaning beyond presentation.
type BudgetAllocation []Project

// TotalCost returns the summed cost of all projects in alloc.
func TotalCost(alloc BudgetAllocation) float64 {
	var total float64
	for _, p := range alloc {
		total += p.Cost
	}

	return total
}

// Sorted returns a copy of the allocation sorted ascending.
// The receiver is left untouched.
func (a BudgetAllocation) Sorted() BudgetAllocation {
	out := a.Clone()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Clone returns an independent copy of the allocation.
func (a BudgetAllocation) Clone() BudgetAllocation {
	if a == nil {
		return nil
	}
	out := make(BudgetAllocation, len(a))
	copy(out, a)

	return out
}

// Contains reports whether the allocation funds project p.
func (a BudgetAllocation) Contains(p Project) bool {
	for _, q := range a {
		if q == p {
			return true
		}
	}

	return false
}

// Equal reports content equality, ignoring element order.
func (a BudgetAllocation) Equal(b BudgetAllocation) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := a.Sorted(), b.Sorted()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}

// Less orders allocations lexicographically by sorted content, shorter
// prefixes first. It is the tie-break order used by resolute rules.
func (a BudgetAllocation) Less(b BudgetAllocation) bool {
	as, bs := a.Sorted(), b.Sorted()
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if as[i] != bs[i] {
			return as[i].Less(bs[i])
		}
	}

	return len(as) < len(bs)
}

// Union returns a new allocation funding every project of a plus every
// project of b not already present. The result preserves a's order.
func (a BudgetAllocation) Union(b BudgetAllocation) BudgetAllocation {
	out := a.Clone()
	for _, p := range b {
		if !out.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}

// SortAllocations orders a set of allocations by BudgetAllocation.Less
// and removes duplicates. Rules use it to normalize irresolute output.
func SortAllocations(allocs []BudgetAllocation) []BudgetAllocation {
	sorted := make([]BudgetAllocation, 0, len(allocs))
	for _, a := range allocs {
		sorted = append(sorted, a.Sorted())
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := sorted[:0:0]
	for _, a := range sorted {
		if len(out) == 0 || !out[len(out)-1].Equal(a) {
			out = append(out, a)
		}
	}

	return out
}
