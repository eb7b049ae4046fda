package ballot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/pabukit/election"
)

// Sentinel errors for ballot construction and queries.
var (
	// ErrEmptyGroup indicates an interaction group with no projects.
	ErrEmptyGroup = errors.New("ballot: empty interaction group")

	// ErrVectorLength indicates a group whose utility vector length differs
	// from the group size.
	ErrVectorLength = errors.New("ballot: group size and utility vector length differ")

	// ErrProjectReassigned indicates a project already claimed by another group.
	ErrProjectReassigned = errors.New("ballot: project already belongs to a group")

	// ErrProjectNotAssigned indicates a lookup of a project without a group.
	ErrProjectNotAssigned = errors.New("ballot: project not assigned to any group")
)

// GroupAssignment pairs one interaction group with its marginal-utility
// vector. Utilities[k] is the marginal utility when exactly k group members
// are already funded, so len(Projects) must equal len(Utilities).
type GroupAssignment struct {
	Projects  []election.Project
	Utilities []float64
}

// groupEntry is the internal record shared by reference across all member
// projects of one group. The utils slice is the single shared vector.
type groupEntry struct {
	projects []election.Project // members, sorted ascending
	utils    []float64          // shared marginal-utility vector
}

// InteractionBallot is one voter's interaction ballot: a mapping from
// projects to their (group, shared utility vector) records, plus ballot
// identity and metadata. The zero value is not usable; construct with New
// or NewFromGroups.
type InteractionBallot struct {
	// Name identifies the ballot (typically the voter).
	Name string

	// Meta stores arbitrary string metadata about the ballot.
	Meta map[string]string

	entries map[election.Project]*groupEntry
	order   []election.Project // key insertion order
}

// New returns an empty interaction ballot with the given name.
func New(name string) *InteractionBallot {
	return &InteractionBallot{
		Name:    name,
		Meta:    make(map[string]string),
		entries: make(map[election.Project]*groupEntry),
	}
}

// NewFromGroups builds a ballot from a list of group assignments.
// Validation mirrors Set: groups must be non-empty, pairwise disjoint, and
// sized to their utility vectors; the returned error names the offender.
func NewFromGroups(groups []GroupAssignment, name string) (*InteractionBallot, error) {
	b := New(name)
	for _, g := range groups {
		if err := b.Set(g.Projects, g.Utilities); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Set records one interaction group with its utility vector.
// All member projects end up sharing the same vector slice.
//
// Errors:
//   - ErrEmptyGroup when the group has no projects.
//   - ErrVectorLength when len(projects) != len(utilities).
//   - ErrProjectReassigned when any project already belongs to a recorded
//     group (including a duplicate within this group); the ballot is left
//     unchanged.
func (b *InteractionBallot) Set(projects []election.Project, utilities []float64) error {
	if len(projects) == 0 {
		return ErrEmptyGroup
	}
	if len(projects) != len(utilities) {
		return fmt.Errorf("%w: group of %d projects, %d utilities",
			ErrVectorLength, len(projects), len(utilities))
	}

	// Validate before mutating, so a failed Set leaves the ballot intact.
	seen := make(map[election.Project]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q listed twice in one group", ErrProjectReassigned, p.Name)
		}
		seen[p] = struct{}{}
		if _, taken := b.entries[p]; taken {
			return fmt.Errorf("%w: %q", ErrProjectReassigned, p.Name)
		}
	}

	entry := &groupEntry{
		projects: make([]election.Project, len(projects)),
		utils:    utilities,
	}
	copy(entry.projects, projects)
	sort.Slice(entry.projects, func(i, j int) bool {
		return entry.projects[i].Less(entry.projects[j])
	})

	for _, p := range projects {
		b.entries[p] = entry
		b.order = append(b.order, p)
	}

	return nil
}

// Lookup returns the group and utility vector recorded for project p.
// The group slice is a copy sorted ascending; the utility slice is the
// group's shared vector, so mutations through it are visible to every
// member project.
func (b *InteractionBallot) Lookup(p election.Project) ([]election.Project, []float64, error) {
	entry, ok := b.entries[p]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrProjectNotAssigned, p.Name)
	}
	group := make([]election.Project, len(entry.projects))
	copy(group, entry.projects)

	return group, entry.utils, nil
}

// Contains reports whether the ballot scores project p.
func (b *InteractionBallot) Contains(p election.Project) bool {
	_, ok := b.entries[p]

	return ok
}

// Len returns the number of projects the ballot scores.
func (b *InteractionBallot) Len() int { return len(b.entries) }

// Projects returns the scored projects in key insertion order.
func (b *InteractionBallot) Projects() []election.Project {
	out := make([]election.Project, len(b.order))
	copy(out, b.order)

	return out
}

// Complete assigns a private singleton group with the vector
// (defaultScore) to every project of projects the ballot does not cover
// yet. Already-covered projects are untouched, so Complete is idempotent.
func (b *InteractionBallot) Complete(projects []election.Project, defaultScore float64) {
	for _, p := range projects {
		if _, ok := b.entries[p]; ok {
			continue
		}
		entry := &groupEntry{
			projects: []election.Project{p},
			utils:    []float64{defaultScore},
		}
		b.entries[p] = entry
		b.order = append(b.order, p)
	}
}

// Clone returns a deep copy of the ballot: same name, metadata, groups and
// key order, with freshly allocated group records. Within the clone, member
// projects of one group still share one vector; the clone and the source
// share nothing.
func (b *InteractionBallot) Clone() *InteractionBallot {
	out := New(b.Name)
	for k, v := range b.Meta {
		out.Meta[k] = v
	}
	out.order = make([]election.Project, len(b.order))
	copy(out.order, b.order)

	cloned := make(map[*groupEntry]*groupEntry, len(b.entries))
	for p, entry := range b.entries {
		dup, ok := cloned[entry]
		if !ok {
			dup = &groupEntry{
				projects: append([]election.Project(nil), entry.projects...),
				utils:    append([]float64(nil), entry.utils...),
			}
			cloned[entry] = dup
		}
		out.entries[p] = dup
	}

	return out
}

// Merge returns a new ballot holding every group of b followed by every
// group of other, keeping b's name and metadata. A project scored by both
// ballots fails with ErrProjectReassigned.
func (b *InteractionBallot) Merge(other *InteractionBallot) (*InteractionBallot, error) {
	out := b.Clone()
	for _, g := range other.groupsInOrder() {
		if err := out.Set(g.Projects, append([]float64(nil), g.Utilities...)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// groupsInOrder returns the ballot's groups as assignments, ordered by the
// first appearance of any member project.
func (b *InteractionBallot) groupsInOrder() []GroupAssignment {
	seen := make(map[*groupEntry]struct{}, len(b.entries))
	out := make([]GroupAssignment, 0, len(b.entries))
	for _, p := range b.order {
		entry := b.entries[p]
		if _, done := seen[entry]; done {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, GroupAssignment{
			Projects:  append([]election.Project(nil), entry.projects...),
			Utilities: entry.utils,
		})
	}

	return out
}
