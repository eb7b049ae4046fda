// Package pabukit is an in-memory toolkit for computing participatory-
// budgeting elections in which voters' utilities interact: a project's
// worth to a voter depends on how many other projects from the same
// interaction group get funded alongside it.
//
// What's inside?
//
//	A deterministic, synchronous library that brings together:
//		• Identity layer: projects, instances, feasible budget allocations
//		• Interaction ballots: disjoint project groups with shared
//		  marginal-utility vectors, mutable and frozen (hashable) forms
//		• Interaction profiles: ordered ballot collections with legality
//		  metadata that survives every composition operation
//		• Satisfaction measures: pluggable project/bundle scorers,
//		  with and without interaction effects
//		• Allocation rules: greedy and exact utilitarian welfare, plus
//		  budget-escalation and rule-chaining combinators under one
//		  uniform execution contract
//
// Why pabukit?
//
//   - Uniform rule contract — resolute or irresolute, precomputed or
//     rule-built satisfaction, initial allocations threaded throughout
//   - Deterministic — sorted enumeration everywhere, documented tie-breaks
//   - Feasible by construction — every rule output respects the budget
//
// Everything is organized under five subpackages:
//
//	election/     — Project, Instance, BudgetAllocation
//	ballot/       — InteractionBallot, FrozenInteractionBallot
//	profile/      — InteractionProfile
//	satisfaction/ — satisfaction measures & satisfaction profiles
//	rules/        — the rule contract, welfare rules, combinators
//
// Elections are computed once, offline, at research scale: there is no
// persistence, no parallelism, and no I/O anywhere in the library.
//
//	go get github.com/katalvlaran/pabukit
package pabukit
