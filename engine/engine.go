// Package engine couples a search tree with a reward model in an
// episodic plan-act loop: search for a fixed budget, execute the best
// action, then either re-root the tree under the executed action or
// start over from scratch.
package engine

import "uct/searcher"

// MaxSteps bounds a single Run so a misconfigured caller cannot loop
// forever.
const MaxSteps = 10000

// Step records one executed planning step.
type Step struct {
	Action int
	Reward float64
	Nodes  int
	Depth  int
}

// Planner runs searches and executes actions against a reward model.
type Planner interface {
	// Run executes steps planning steps and returns the discounted
	// return collected along the way, plus a record per step.
	Run(steps int) (float64, []Step)
}

// NewTree builds a fresh search tree; the engine calls it at start
// and, without tree reuse, again after every executed action.
type NewTree func() *searcher.Tree
