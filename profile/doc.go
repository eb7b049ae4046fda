// Package profile implements interaction profiles: the ordered collection
// of all voters' interaction ballots for one election, together with the
// election-legality metadata (ballot-length and score bounds) and the
// originating instance.
//
// Profiles are aggregates, not bare slices. Every operation that derives a
// new collection (Concat, Repeat, Reversed, Clone, Slice) returns an
// *InteractionProfile with the full metadata of its source re-attached, so
// derived profiles behave identically to the original for downstream
// rules. Construction inherits metadata from a source profile via From,
// with explicit options overriding inherited values (later options win).
//
// Interaction ballots admit no total order, so Sort always fails with
// ErrUnsortable.
//
// Errors:
//
//	ErrNilBallot   - appending a nil ballot while validation is enabled.
//	ErrBallotIndex - ballot index or slice bounds out of range.
//	ErrUnsortable  - attempt to sort an interaction profile.
package profile
