package main

import (
	"fmt"
	"time"

	"uct/engine"
	"uct/mdp"
	"uct/searcher"
)

func main() {
	runBanditDemo()
	runPlanningDemo()
}

// runBanditDemo grows a small tree over a uniform-reward bandit and
// checks the bookkeeping the tree reports about itself.
func runBanditDemo() {
	const actions = 4
	const iterations = 10

	rng := mdp.NewMersenneTwister(time.Now().UnixNano())
	bandit := mdp.UniformBandit(rng)
	tree := searcher.New(actions, searcher.WithRand(rng))

	fmt.Println("Running bandit demo...")
	for k := 0; k < iterations; k++ {
		fmt.Printf("iteration %d: tree %s\n", k, tree)
		tree.Iterate(bandit)
	}
	fmt.Printf("final tree: %s\n", tree)

	best := tree.BestAction()
	fmt.Printf("Best action: %d\n", best)
	fmt.Printf("Number of nodes: %d\n", tree.NodeCount())
	fmt.Printf("Max depth: %d\n", tree.MaxDepth())

	// The best action must agree with the argmax over action values.
	correct := 0
	bestQ := tree.QValue(0)
	for k := 0; k < actions; k++ {
		if q := tree.QValue(k); q >= bestQ {
			bestQ = q
			correct = k
		}
	}
	if correct != best {
		fmt.Printf("Wrong best action - should be: %d\n", correct)
		return
	}
	fmt.Println("Correct best action")

	// Each iteration expands one leaf into exactly `actions` children.
	expected := 1 + actions*iterations
	if expected != tree.NodeCount() {
		fmt.Printf("Unexpected number of nodes. Should be: %d\n", expected)
		return
	}
	fmt.Printf("Number of nodes is correct: %d\n", expected)
}

// runPlanningDemo runs the plan-act loop on a process where the
// highest-indexed action is strictly best.
func runPlanningDemo() {
	const actions = 3
	const budget = 200
	const steps = 5

	rng := mdp.NewMersenneTwister(time.Now().UnixNano() + 1)
	gen := mdp.Linear()
	newTree := func() *searcher.Tree {
		return searcher.New(actions, searcher.WithRand(rng), searcher.WithDiscount(0.95))
	}

	fmt.Println("Running planning demo...")
	e := engine.Local(newTree, gen, budget, engine.WithTreeReuse())
	total, record := e.Run(steps)
	for _, step := range record {
		fmt.Printf("action %d reward %.2f\n", step.Action, step.Reward)
	}
	fmt.Printf("Discounted return over %d steps: %.4f\n", steps, total)
}
