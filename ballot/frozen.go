package ballot

import (
	"fmt"
	"hash/fnv"

	"github.com/katalvlaran/pabukit/election"
)

// FrozenInteractionBallot is an immutable, hashable snapshot of an
// InteractionBallot. It exposes read-only queries only; every returned
// slice or map is a copy, so the snapshot can be shared freely.
type FrozenInteractionBallot struct {
	name    string
	meta    map[string]string
	entries map[election.Project]groupEntry
	order   []election.Project
}

// Freeze returns an immutable, hashable snapshot of the ballot.
// The snapshot copies all groups and vectors, so later mutations of the
// source ballot (or of vectors obtained via Lookup) do not leak into it.
func (b *InteractionBallot) Freeze() *FrozenInteractionBallot {
	fb := &FrozenInteractionBallot{
		name:    b.Name,
		meta:    make(map[string]string, len(b.Meta)),
		entries: make(map[election.Project]groupEntry, len(b.entries)),
		order:   make([]election.Project, len(b.order)),
	}
	for k, v := range b.Meta {
		fb.meta[k] = v
	}
	copy(fb.order, b.order)

	frozen := make(map[*groupEntry]groupEntry, len(b.entries))
	for p, entry := range b.entries {
		dup, ok := frozen[entry]
		if !ok {
			dup = groupEntry{
				projects: append([]election.Project(nil), entry.projects...),
				utils:    append([]float64(nil), entry.utils...),
			}
			frozen[entry] = dup
		}
		fb.entries[p] = dup
	}

	return fb
}

// Hash returns a 64-bit digest of the ballot's keys.
//
// The digest covers the key sequence in insertion order, not the full
// content: two snapshots built from identical groups inserted in the same
// order hash equal, while the same content inserted in a different order
// hashes differently. This mirrors the historical behavior and is intended
// for within-run deduplication, not cross-run caching.
func (fb *FrozenInteractionBallot) Hash() uint64 {
	h := fnv.New64a()
	for _, p := range fb.order {
		_, _ = h.Write([]byte(p.Name))
		_, _ = h.Write([]byte{0})
	}

	return h.Sum64()
}

// Name returns the ballot identifier the snapshot was taken with.
func (fb *FrozenInteractionBallot) Name() string { return fb.name }

// Meta returns a copy of the snapshot's metadata.
func (fb *FrozenInteractionBallot) Meta() map[string]string {
	out := make(map[string]string, len(fb.meta))
	for k, v := range fb.meta {
		out[k] = v
	}

	return out
}

// Lookup returns copies of the group and utility vector recorded for p.
func (fb *FrozenInteractionBallot) Lookup(p election.Project) ([]election.Project, []float64, error) {
	entry, ok := fb.entries[p]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrProjectNotAssigned, p.Name)
	}
	group := append([]election.Project(nil), entry.projects...)
	utils := append([]float64(nil), entry.utils...)

	return group, utils, nil
}

// Contains reports whether the snapshot scores project p.
func (fb *FrozenInteractionBallot) Contains(p election.Project) bool {
	_, ok := fb.entries[p]

	return ok
}

// Len returns the number of projects the snapshot scores.
func (fb *FrozenInteractionBallot) Len() int { return len(fb.entries) }

// Projects returns the scored projects in original insertion order.
func (fb *FrozenInteractionBallot) Projects() []election.Project {
	out := make([]election.Project, len(fb.order))
	copy(out, fb.order)

	return out
}

// Thaw returns a mutable ballot rebuilt from the snapshot, preserving
// name, metadata and key order.
func (fb *FrozenInteractionBallot) Thaw() *InteractionBallot {
	b := New(fb.name)
	for k, v := range fb.meta {
		b.Meta[k] = v
	}
	b.order = append([]election.Project(nil), fb.order...)

	// Distinct groups may have smallest members sharing a name, so the key
	// must be the full Project value.
	thawed := make(map[election.Project]*groupEntry, len(fb.entries))
	for p, entry := range fb.entries {
		key := entry.projects[0]
		dup, ok := thawed[key]
		if !ok {
			dup = &groupEntry{
				projects: append([]election.Project(nil), entry.projects...),
				utils:    append([]float64(nil), entry.utils...),
			}
			thawed[key] = dup
		}
		b.entries[p] = dup
	}

	return b
}
