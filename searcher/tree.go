// Package searcher implements Monte Carlo Tree Search with the UCT
// selection rule: repeated simulated trajectories grow a tree of
// action-value estimates, balancing exploration and exploitation with
// UCB1 and propagating discounted returns back to the root.
package searcher

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"uct/mdp"
)

// Tree is a UCT search tree over a fixed action domain. It is not
// safe for concurrent use: overlapping Iterate calls race on node
// statistics and on the leaf-to-internal transition.
type Tree struct {
	actions  int
	discount float64
	horizon  int
	epsilon  float64
	rng      mdp.Source
	metrics  Collector
	root     *node
}

type Option func(t *Tree)

// WithDiscount sets the per-step reward decay, in (0,1].
func WithDiscount(discount float64) Option {
	return func(t *Tree) {
		t.discount = discount
	}
}

// WithHorizon sets the number of simulated steps per rollout.
func WithHorizon(steps int) Option {
	return func(t *Tree) {
		t.horizon = steps
	}
}

// WithEpsilon sets the guard added to visit counts in mean-value
// formulas, which also scales the tie-break perturbation.
func WithEpsilon(epsilon float64) Option {
	return func(t *Tree) {
		t.epsilon = epsilon
	}
}

// WithRand sets the uniform random source used for rollout action
// choice and tie-breaking. Without it the tree falls back to a
// time-seeded generator.
func WithRand(rng mdp.Source) Option {
	return func(t *Tree) {
		t.rng = rng
	}
}

// WithCollector installs a diagnostics collector. The default
// collector discards everything.
func WithCollector(c Collector) Option {
	return func(t *Tree) {
		t.metrics = c
	}
}

// New returns a single-leaf tree over the given number of actions.
// Invalid configuration is a programming error and panics.
func New(actions int, options ...Option) *Tree {
	t := &Tree{ // Default values
		actions:  actions,
		discount: DefaultDiscount,
		horizon:  DefaultHorizon,
		epsilon:  DefaultEpsilon,
		metrics:  NewNoCollector(),
	}
	for _, option := range options {
		option(t)
	}

	if t.actions < 1 {
		panic("must have at least one action")
	}
	if t.discount <= 0 || t.discount > 1 {
		panic("discount must be in (0,1]")
	}
	if t.horizon < 1 {
		panic("rollout horizon must be positive")
	}
	if t.epsilon <= 0 {
		panic("epsilon must be positive")
	}
	if t.rng == nil {
		t.rng = mdp.FromRand(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	}

	t.root = newNode(t.discount)
	return t
}

// Actions returns the width of the action domain.
func (t *Tree) Actions() int {
	return t.actions
}

// Discount returns the per-step reward decay.
func (t *Tree) Discount() float64 {
	return t.discount
}

// Iterate performs one full planning step: descend from the root by
// UCB1 until a leaf is reached, sampling the generator once per edge;
// expand the leaf; pick one fresh child and estimate its value by
// rollout; then back the discounted return up the visited path. Each
// call deepens the best-path frontier by exactly one level and adds
// exactly Actions() nodes.
func (t *Tree) Iterate(gen mdp.Generator) {
	if gen == nil {
		panic("nil generator")
	}
	t.metrics.AddIteration()

	type step struct {
		node   *node
		reward float64
	}

	// The edge into the root carries no reward.
	path := []step{{t.root, 0}}
	cur := t.root
	for !cur.leaf() {
		action := cur.selectAction(t.rng, t.epsilon)
		reward := gen(action)
		t.metrics.AddGeneratorCall()
		cur = cur.children[action]
		path = append(path, step{cur, reward})
	}

	cur.expand(t.actions)
	action := cur.selectAction(t.rng, t.epsilon)
	reward := gen(action)
	t.metrics.AddGeneratorCall()
	cur = cur.children[action]
	path = append(path, step{cur, reward})

	// Walk the path bottom-up so every ancestor's total reflects the
	// full discounted return-to-go from that node, not just the
	// rollout estimate.
	value := t.rollout(gen)
	for i := len(path) - 1; i >= 0; i-- {
		value = path[i].reward + t.discount*value
		path[i].node.updateStats(value)
	}
}

// rollout estimates the value of a fresh leaf by simulating horizon
// uniformly random actions and accumulating their discounted rewards.
func (t *Tree) rollout(gen mdp.Generator) float64 {
	total := 0.0
	weight := 1.0
	for i := 0; i < t.horizon; i++ {
		action := int(t.rng() * float64(t.actions))
		if action >= t.actions { // Guard against float rounding at the top of the range
			action = t.actions - 1
		}
		total += weight * gen(action)
		weight *= t.discount
		t.metrics.AddRolloutStep()
		t.metrics.AddGeneratorCall()
	}
	return total
}

// BestAction returns the action with the highest mean value under the
// root, exploitation only. On a never-iterated tree there is nothing
// to rank, so a uniformly random action is returned.
func (t *Tree) BestAction() int {
	if t.root.leaf() {
		action := int(t.rng() * float64(t.actions))
		if action >= t.actions {
			action = t.actions - 1
		}
		return action
	}
	return t.root.bestAction(t.rng, t.epsilon)
}

// Value returns the root's mean backed-up return.
func (t *Tree) Value() float64 {
	return t.root.value(t.epsilon)
}

// QValue returns the mean backed-up return of the child reached by
// the given action. The tree must have been iterated at least once.
func (t *Tree) QValue(action int) float64 {
	if action < 0 || action >= t.actions {
		panic("action index out of range")
	}
	if t.root.leaf() {
		panic("cannot query action values on a leaf node")
	}
	return t.root.children[action].value(t.epsilon)
}

// NodeCount returns the total number of nodes in the tree.
func (t *Tree) NodeCount() int {
	return t.root.count()
}

// MaxDepth returns the height of the tree, counting the root.
func (t *Tree) MaxDepth() int {
	return t.root.depth()
}

// Clone returns an independent deep copy: same statistics and
// structure, no shared nodes, so iterating one tree never disturbs
// the other. The random source and collector are external
// collaborators and remain shared.
func (t *Tree) Clone() *Tree {
	clone := *t
	clone.root = t.root.clone()
	return &clone
}

// Descend returns an independent tree rooted at the subtree reached
// by taking the given action from the root. The receiver is left
// untouched.
func (t *Tree) Descend(action int) *Tree {
	if action < 0 || action >= t.actions {
		panic("action index out of range")
	}
	if t.root.leaf() {
		panic("cannot descend from a leaf node")
	}
	child := *t
	child.root = t.root.children[action].clone()
	return &child
}

// String renders the root's summary: [V=<value>] for a leaf, or
// [V=<value>,Q0=<q0>,...] with one Q entry per action otherwise.
func (t *Tree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[V=%g", t.Value())
	for k, child := range t.root.children {
		fmt.Fprintf(&sb, ",Q%d=%g", k, child.value(t.epsilon))
	}
	sb.WriteString("]")
	return sb.String()
}
