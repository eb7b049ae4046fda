package profile

import (
	"github.com/katalvlaran/pabukit/ballot"
	"github.com/katalvlaran/pabukit/election"
)

// Option configures profile construction. Options are applied in order,
// later options overriding earlier ones; From is therefore usually first.
type Option func(*config)

// config collects everything New needs, with nil meaning "not set".
type config struct {
	instance       *election.Instance
	ballots        []*ballot.InteractionBallot
	validation     *bool
	legalMinLength *int
	legalMaxLength *int
	legalMinScore  *float64
	legalMaxScore  *float64
}

// From inherits instance, validation flag and legality bounds from a source
// profile. Explicit options placed after From override the inherited values.
func From(source *InteractionProfile) Option {
	return func(c *config) {
		if source == nil {
			return
		}
		c.instance = source.Instance
		validation := source.BallotValidation
		c.validation = &validation
		c.legalMinLength = copyIntPtr(source.LegalMinLength)
		c.legalMaxLength = copyIntPtr(source.LegalMaxLength)
		c.legalMinScore = copyFloatPtr(source.LegalMinScore)
		c.legalMaxScore = copyFloatPtr(source.LegalMaxScore)
	}
}

// WithInstance attaches the originating election instance.
func WithInstance(inst *election.Instance) Option {
	return func(c *config) { c.instance = inst }
}

// WithBallots seeds the profile with the given ballots, in order.
func WithBallots(ballots ...*ballot.InteractionBallot) Option {
	return func(c *config) { c.ballots = append(c.ballots, ballots...) }
}

// WithValidation enables or disables ballot validation on Append.
// The default is enabled.
func WithValidation(enabled bool) Option {
	return func(c *config) { c.validation = &enabled }
}

// WithLegalLength sets the legal minimum and maximum number of projects a
// voter may score. Negative values mean "unbounded" on that side.
func WithLegalLength(minLen, maxLen int) Option {
	return func(c *config) {
		if minLen >= 0 {
			c.legalMinLength = &minLen
		}
		if maxLen >= 0 {
			c.legalMaxLength = &maxLen
		}
	}
}

// WithLegalScore sets the legal minimum and maximum per-project score.
func WithLegalScore(minScore, maxScore float64) Option {
	return func(c *config) {
		c.legalMinScore = &minScore
		c.legalMaxScore = &maxScore
	}
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
