package election

import "errors"

// CostEpsilon is the tolerance used by all cost/budget comparisons.
// A bundle is affordable when TotalCost(bundle) <= limit + CostEpsilon.
const CostEpsilon = 1e-9

// Sentinel errors for instance construction.
var (
	// ErrEmptyProjectName indicates a project with an empty name.
	ErrEmptyProjectName = errors.New("election: project name is empty")

	// ErrDuplicateProject indicates two projects sharing the same name.
	ErrDuplicateProject = errors.New("election: duplicate project name")

	// ErrNegativeCost indicates a project with a negative cost.
	ErrNegativeCost = errors.New("election: negative project cost")

	// ErrNegativeBudget indicates a negative budget limit.
	ErrNegativeBudget = errors.New("election: negative budget limit")
)

// Project is one fundable item of an election: an identity plus a cost.
// Project is a comparable value type, so it can be used as a map key,
// and is ordered by Name (then Cost, for the degenerate case of two
// projects sharing a name across instances).
type Project struct {
	// Name uniquely identifies the project within its Instance.
	Name string

	// Cost is the price of funding the project. Zero-cost projects are legal.
	Cost float64
}

// Less reports whether p orders strictly before q (by Name, then Cost).
func (p Project) Less(q Project) bool {
	if p.Name != q.Name {
		return p.Name < q.Name
	}

	return p.Cost < q.Cost
}

// String returns the project name.
func (p Project) String() string { return p.Name }
