// Package satisfaction scores funded bundles against interaction ballots.
//
// A Measure is the capability every allocation rule consumes: a
// project-level scorer (the utility of one project given the already
// funded bundle) and a bundle-level scorer (the utility of a whole funded
// set). InteractionSatisfaction is the concrete measure: it binds one
// (Instance, Profile, Ballot) triple to a caller-supplied pair of scoring
// functions and delegates every query to them. Group-dependent values
// cannot be memoized independently of the funded set, so there is
// deliberately no cross-query cache.
//
// Two standard instantiations ship with the package:
//
//   - CardinalityWithInteraction — a project scores the marginal utility
//     at the count of its already-funded group members; a bundle scores,
//     per touched group, the cumulative sum of the first |group ∩ bundle|
//     vector entries. A group {a,b} with vector (1,5) scores 1 for bundle
//     {a} and 1+5=6 for bundle {a,b}.
//
//   - AdditiveIgnoringInteraction — the baseline that ignores interaction
//     effects: a project always scores its vector's 0-th entry, a bundle
//     the sum of its projects' scores.
//
// A Profile of measures (one per ballot) can be precomputed once and
// passed to rules; rules treat it as observationally equivalent to
// building the measures themselves from a Builder.
//
// Edge cases: a project absent from the ballot scores 0; an empty bundle
// scores 0.
package satisfaction
