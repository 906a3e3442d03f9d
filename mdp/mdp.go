// Package mdp defines the boundary between the search tree and the
// decision process being planned over: a reward model that scores
// actions, a uniform random source, and a few reference processes.
package mdp

// Generator maps an action index to an immediate scalar reward. It
// stands in for the environment: the searcher never inspects process
// internals, it only samples rewards through this function. A
// Generator may be stateful; the searcher calls it once per tree edge
// traversed per iteration plus once per rollout step.
type Generator func(action int) float64

// Source produces uniform random numbers in [0,1). All randomness in
// the searcher (rollout action choice and tie-break perturbation) is
// routed through a single Source so that search behavior is
// reproducible with a deterministic stand-in.
type Source func() float64
