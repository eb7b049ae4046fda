// Package ballot implements interaction ballots: per-voter preferences in
// which a project's utility depends on how many other projects from the
// same interaction group get funded.
//
// A ballot partitions the projects it mentions into disjoint interaction
// groups. A group of size n carries a marginal-utility vector of length n,
// where vector[k] is the utility contributed when exactly k members of the
// group are already funded. Every member project of a group references the
// group's single shared vector, never a copy, so group membership and
// utility lookups can never drift apart.
//
// Lifecycle:
//   - Build incrementally with Set (one group at a time) or in bulk with
//     NewFromGroups.
//   - Optionally Complete against a reference project set, which assigns a
//     private singleton group with a default score to every project not yet
//     covered.
//   - Freeze on demand into an immutable, hashable snapshot.
//
// Determinism:
//   - Projects() enumerates keys in insertion order; Lookup returns group
//     members sorted ascending.
//
// Errors:
//
//	ErrEmptyGroup         - a group with no projects.
//	ErrVectorLength       - group size != utility vector length.
//	ErrProjectReassigned  - a project claimed by two groups.
//	ErrProjectNotAssigned - lookup of a project the ballot never scored.
package ballot
