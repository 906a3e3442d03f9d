package engine

import (
	"github.com/rs/zerolog/log"

	"uct/mdp"
	"uct/searcher"
)

// Engine is a single-process Planner.
type Engine struct {
	Tree    *searcher.Tree
	newTree NewTree
	gen     mdp.Generator
	budget  int
	reuse   bool
}

type Option func(e *Engine)

// WithTreeReuse keeps the subtree under each executed action as the
// next root instead of planning every step from scratch.
func WithTreeReuse() Option {
	return func(e *Engine) {
		e.reuse = true
	}
}

// Local returns a Planner that runs budget search iterations before
// every executed action.
func Local(newTree NewTree, gen mdp.Generator, budget int, options ...Option) *Engine {
	if newTree == nil {
		panic("engine needs a tree constructor")
	}
	if gen == nil {
		panic("engine needs a reward model")
	}
	if budget < 1 {
		panic("search budget must be positive")
	}

	e := &Engine{
		Tree:    newTree(),
		newTree: newTree,
		gen:     gen,
		budget:  budget,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the plan-act loop until steps actions have been taken,
// returning the discounted return and a record per step.
func (e *Engine) Run(steps int) (float64, []Step) {
	if steps < 1 || steps > MaxSteps {
		panic("step count out of range")
	}

	total := 0.0
	weight := 1.0
	records := make([]Step, 0, steps)

	for i := 0; i < steps; i++ {
		for k := 0; k < e.budget; k++ {
			e.Tree.Iterate(e.gen)
		}

		action := e.Tree.BestAction()
		reward := e.gen(action)
		total += weight * reward
		weight *= e.Tree.Discount()

		records = append(records, Step{
			Action: action,
			Reward: reward,
			Nodes:  e.Tree.NodeCount(),
			Depth:  e.Tree.MaxDepth(),
		})
		log.Info().Msgf("step %d of %d: action %d reward %.4f (%d nodes, depth %d)",
			i+1, steps, action, reward, e.Tree.NodeCount(), e.Tree.MaxDepth())

		if e.reuse {
			e.Tree = e.Tree.Descend(action)
		} else {
			e.Tree = e.newTree()
		}
	}
	return total, records
}
