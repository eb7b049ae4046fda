package profile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pabukit/ballot"
	"github.com/katalvlaran/pabukit/election"
)

// Sentinel errors for profile operations.
var (
	// ErrNilBallot indicates a nil ballot was appended with validation on.
	ErrNilBallot = errors.New("profile: nil ballot")

	// ErrBallotIndex indicates a ballot index or slice range out of bounds.
	ErrBallotIndex = errors.New("profile: ballot index out of range")

	// ErrUnsortable indicates an attempt to sort interaction ballots,
	// which admit no total order.
	ErrUnsortable = errors.New("profile: interaction ballots cannot be sorted")
)

// InteractionProfile is the ordered collection of all voters' interaction
// ballots for one election, plus legality metadata. Ballots are held by
// reference: the profile owns the ordering, not the ballots' content.
type InteractionProfile struct {
	// Instance is the election the profile belongs to. May be nil for
	// free-standing profiles.
	Instance *election.Instance

	// BallotValidation controls whether Append rejects invalid ballots.
	BallotValidation bool

	// Legality bounds of the election; nil means unbounded.
	LegalMinLength *int
	LegalMaxLength *int
	LegalMinScore  *float64
	LegalMaxScore  *float64

	ballots []*ballot.InteractionBallot
}

// New builds a profile from the given options. Validation defaults to
// enabled. Seeded ballots go through the same checks as Append.
func New(opts ...Option) (*InteractionProfile, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	validation := true
	if c.validation != nil {
		validation = *c.validation
	}

	prof := &InteractionProfile{
		Instance:         c.instance,
		BallotValidation: validation,
		LegalMinLength:   c.legalMinLength,
		LegalMaxLength:   c.legalMaxLength,
		LegalMinScore:    c.legalMinScore,
		LegalMaxScore:    c.legalMaxScore,
	}
	for _, b := range c.ballots {
		if err := prof.Append(b); err != nil {
			return nil, err
		}
	}

	return prof, nil
}

// Append adds a ballot at the end of the profile.
// With validation enabled, nil ballots are rejected with ErrNilBallot.
func (prof *InteractionProfile) Append(b *ballot.InteractionBallot) error {
	if prof.BallotValidation && b == nil {
		return ErrNilBallot
	}
	prof.ballots = append(prof.ballots, b)

	return nil
}

// Len returns the number of ballots in the profile.
func (prof *InteractionProfile) Len() int { return len(prof.ballots) }

// Ballot returns the i-th ballot.
func (prof *InteractionProfile) Ballot(i int) (*ballot.InteractionBallot, error) {
	if i < 0 || i >= len(prof.ballots) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBallotIndex, i, len(prof.ballots))
	}

	return prof.ballots[i], nil
}

// Ballots returns a copy of the backing ballot slice, in profile order.
// The ballots themselves are shared, per the ownership model.
func (prof *InteractionProfile) Ballots() []*ballot.InteractionBallot {
	out := make([]*ballot.InteractionBallot, len(prof.ballots))
	copy(out, prof.ballots)

	return out
}

// Complete applies ballot.Complete to every ballot in place: any project
// of projects not yet scored receives a private singleton group with
// defaultScore.
func (prof *InteractionProfile) Complete(projects []election.Project, defaultScore float64) {
	for _, b := range prof.ballots {
		b.Complete(projects, defaultScore)
	}
}

// TotalScore sums, over every ballot scoring project, the marginal utility
// of project at the funded count of bundle within its group. Ballots that
// do not score the project contribute 0. The project's own membership in
// bundle is ignored when counting, so the result is the profile-wide
// marginal utility of funding project on top of bundle.
func (prof *InteractionProfile) TotalScore(project election.Project, bundle election.BudgetAllocation) float64 {
	var score float64
	for _, b := range prof.ballots {
		group, utils, err := b.Lookup(project)
		if err != nil {
			continue
		}
		score += utils[fundedCount(group, bundle, project)]
	}

	return score
}

// fundedCount returns |group ∩ bundle|, not counting self. The result is
// always a valid index into the group's utility vector.
func fundedCount(group []election.Project, bundle election.BudgetAllocation, self election.Project) int {
	count := 0
	for _, member := range group {
		if member != self && bundle.Contains(member) {
			count++
		}
	}

	return count
}

// Sort always fails: interaction ballots admit no total order.
func (prof *InteractionProfile) Sort() error { return ErrUnsortable }

// Concat returns a new profile holding the receiver's ballots followed by
// other's, with the receiver's metadata re-attached.
func (prof *InteractionProfile) Concat(other *InteractionProfile) *InteractionProfile {
	out := prof.emptyLike()
	out.ballots = make([]*ballot.InteractionBallot, 0, len(prof.ballots)+other.Len())
	out.ballots = append(out.ballots, prof.ballots...)
	out.ballots = append(out.ballots, other.ballots...)

	return out
}

// Repeat returns a new profile with the receiver's ballot sequence
// repeated n times (n <= 0 yields an empty profile), metadata re-attached.
func (prof *InteractionProfile) Repeat(n int) *InteractionProfile {
	out := prof.emptyLike()
	if n <= 0 {
		return out
	}
	out.ballots = make([]*ballot.InteractionBallot, 0, n*len(prof.ballots))
	for i := 0; i < n; i++ {
		out.ballots = append(out.ballots, prof.ballots...)
	}

	return out
}

// Reversed returns a new profile with the ballot order reversed,
// metadata re-attached.
func (prof *InteractionProfile) Reversed() *InteractionProfile {
	out := prof.emptyLike()
	out.ballots = make([]*ballot.InteractionBallot, len(prof.ballots))
	for i, b := range prof.ballots {
		out.ballots[len(prof.ballots)-1-i] = b
	}

	return out
}

// Clone returns a new profile with the same ballot references and
// metadata. Ballot content is shared, matching the ownership model.
func (prof *InteractionProfile) Clone() *InteractionProfile {
	out := prof.emptyLike()
	out.ballots = make([]*ballot.InteractionBallot, len(prof.ballots))
	copy(out.ballots, prof.ballots)

	return out
}

// Slice returns a new profile over ballots [lo, hi), metadata re-attached.
func (prof *InteractionProfile) Slice(lo, hi int) (*InteractionProfile, error) {
	if lo < 0 || hi > len(prof.ballots) || lo > hi {
		return nil, fmt.Errorf("%w: [%d:%d] of %d", ErrBallotIndex, lo, hi, len(prof.ballots))
	}
	out := prof.emptyLike()
	out.ballots = make([]*ballot.InteractionBallot, hi-lo)
	copy(out.ballots, prof.ballots[lo:hi])

	return out, nil
}

// emptyLike returns an empty profile carrying the receiver's metadata.
func (prof *InteractionProfile) emptyLike() *InteractionProfile {
	return &InteractionProfile{
		Instance:         prof.Instance,
		BallotValidation: prof.BallotValidation,
		LegalMinLength:   copyIntPtr(prof.LegalMinLength),
		LegalMaxLength:   copyIntPtr(prof.LegalMaxLength),
		LegalMinScore:    copyFloatPtr(prof.LegalMinScore),
		LegalMaxScore:    copyFloatPtr(prof.LegalMaxScore),
	}
}
