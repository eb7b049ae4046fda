// Package rules_test provides runnable examples for the allocation rules
// and their combinators, each verifiable via "go test -run Example".
package rules_test

import (
	"fmt"

	"github.com/katalvlaran/pabukit/ballot"
	"github.com/katalvlaran/pabukit/election"
	"github.com/katalvlaran/pabukit/profile"
	"github.com/katalvlaran/pabukit/rules"
	"github.com/katalvlaran/pabukit/satisfaction"
)

// ExampleGreedyUtilitarianWelfare funds projects one by one in order of
// marginal satisfaction. The a+b synergy (worth 5 together) is invisible
// to the greedy scan, so c wins the first slot.
func ExampleGreedyUtilitarianWelfare() {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 1}
	c := election.Project{Name: "c", Cost: 1}

	inst, _ := election.NewInstance([]election.Project{a, b, c}, 2)
	voter, _ := ballot.NewFromGroups([]ballot.GroupAssignment{
		{Projects: []election.Project{a, b}, Utilities: []float64{1, 5}},
		{Projects: []election.Project{c}, Utilities: []float64{3}},
	}, "voter")
	prof, _ := profile.New(profile.WithInstance(inst), profile.WithBallots(voter))

	outs, err := rules.GreedyUtilitarianWelfare(inst, prof, rules.Options{
		SatBuilder: satisfaction.CardinalityWithInteraction,
		Resolute:   true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(outs[0])
	// Output: [a c]
}

// ExampleMaxUtilitarianWelfare enumerates every feasible allocation and
// keeps the welfare maximum, so it does find the a+b synergy the greedy
// rule misses.
func ExampleMaxUtilitarianWelfare() {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 1}
	c := election.Project{Name: "c", Cost: 1}

	inst, _ := election.NewInstance([]election.Project{a, b, c}, 2)
	voter, _ := ballot.NewFromGroups([]ballot.GroupAssignment{
		{Projects: []election.Project{a, b}, Utilities: []float64{1, 5}},
		{Projects: []election.Project{c}, Utilities: []float64{3}},
	}, "voter")
	prof, _ := profile.New(profile.WithInstance(inst), profile.WithBallots(voter))

	outs, err := rules.MaxUtilitarianWelfare(inst, prof, rules.Options{
		SatBuilder: satisfaction.CardinalityWithInteraction,
		Resolute:   true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(outs[0])
	// Output: [a b]
}

// ExampleCompletionByRuleCombination chains the exact rule with a greedy
// pass: the exact rule leaves the zero-utility project b unfunded, and
// the greedy link spends the leftover budget on it.
func ExampleCompletionByRuleCombination() {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 1}

	inst, _ := election.NewInstance([]election.Project{a, b}, 2)
	voter, _ := ballot.NewFromGroups([]ballot.GroupAssignment{
		{Projects: []election.Project{a}, Utilities: []float64{1}},
		{Projects: []election.Project{b}, Utilities: []float64{0}},
	}, "voter")
	prof, _ := profile.New(profile.WithInstance(inst), profile.WithBallots(voter))

	opts := rules.Options{SatBuilder: satisfaction.AdditiveIgnoringInteraction}
	chain := rules.CompletionByRuleCombination(
		[]rules.Rule{rules.MaxUtilitarianWelfare, rules.GreedyUtilitarianWelfare},
		[]rules.Options{opts, opts},
	)

	outs, err := chain(inst, prof, rules.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(outs[0], "exhaustive:", inst.IsExhaustive(outs[0]))
	// Output: [a b] exhaustive: true
}

// ExampleExhaustionByBudgetIncrease escalates the budget limit step by
// step, committing to the best allocation at each intermediate limit.
func ExampleExhaustionByBudgetIncrease() {
	a := election.Project{Name: "a", Cost: 1}
	b := election.Project{Name: "b", Cost: 1}
	c := election.Project{Name: "c", Cost: 1}

	inst, _ := election.NewInstance([]election.Project{a, b, c}, 2)
	voter, _ := ballot.NewFromGroups([]ballot.GroupAssignment{
		{Projects: []election.Project{a, b}, Utilities: []float64{1, 5}},
		{Projects: []election.Project{c}, Utilities: []float64{3}},
	}, "voter")
	prof, _ := profile.New(profile.WithInstance(inst), profile.WithBallots(voter))

	base := rules.Options{SatBuilder: satisfaction.CardinalityWithInteraction}
	rule := rules.ExhaustionByBudgetIncrease(rules.MaxUtilitarianWelfare, base, 1)

	outs, err := rule(inst, prof, rules.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Probing limit 1 first locks in c, so the a+b synergy is never reached.
	fmt.Println(outs[0])
	// Output: [a c]
}
