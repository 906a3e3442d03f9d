package searcher

import (
	"math"

	"uct/mdp"
)

// node is a single state in the search tree. A node starts as a leaf
// and becomes internal exactly once, when expand attaches one child
// per action; the transition is irreversible. Every node is owned
// exclusively by its parent, so mutating one tree can never be
// observed through another.
type node struct {
	children []*node // nil for a leaf, exactly one entry per action otherwise
	visits   float64
	rewards  float64 // Sum of backed-up returns across all visits
	discount float64
}

func newNode(discount float64) *node {
	return &node{discount: discount}
}

func (n *node) leaf() bool {
	return len(n.children) == 0
}

// value is the mean backed-up return. The visit count is
// epsilon-guarded so an unvisited node reports ~0 instead of dividing
// by zero.
func (n *node) value(epsilon float64) float64 {
	return n.rewards / (n.visits + epsilon)
}

// expand attaches one fresh leaf child per action, each inheriting
// this node's discount. Expanding an internal node is a no-op.
func (n *node) expand(actions int) {
	if !n.leaf() {
		return
	}
	children := make([]*node, actions)
	for k := range children {
		children[k] = newNode(n.discount)
	}
	n.children = children
}

// selectAction picks the child to descend into using UCB1. Each
// child's score is its epsilon-guarded mean value plus an exploration
// bonus that shrinks with the child's visit count, plus a small
// random perturbation to break exact ties. Scanning uses >= so the
// later-indexed child wins a tie; callers relying on repeatable
// searches depend on that direction.
func (n *node) selectAction(rng mdp.Source, epsilon float64) int {
	if n.leaf() {
		panic("cannot select an action on a leaf node")
	}

	selected := -1
	bestScore := math.Inf(-1)
	for k, child := range n.children {
		if child == nil {
			panic("internal node is missing a child")
		}
		score := child.rewards/(child.visits+epsilon) +
			math.Sqrt(math.Log(n.visits+1)/(child.visits+epsilon)) +
			rng()*epsilon
		if score >= bestScore {
			selected = k
			bestScore = score
		}
	}
	return selected
}

// bestAction is the exploitation-only variant of selectAction: same
// scan, same tie-break, no exploration bonus.
func (n *node) bestAction(rng mdp.Source, epsilon float64) int {
	if n.leaf() {
		panic("cannot rank actions on a leaf node")
	}

	selected := -1
	bestValue := math.Inf(-1)
	for k, child := range n.children {
		if child == nil {
			panic("internal node is missing a child")
		}
		v := child.value(epsilon) + rng()*epsilon
		if v >= bestValue {
			selected = k
			bestValue = v
		}
	}
	return selected
}

func (n *node) updateStats(value float64) {
	n.visits++
	n.rewards += value
}

// clone deep-copies the subtree rooted at n. The copy shares no nodes
// with the original. Traversal uses an explicit stack so arbitrarily
// deep trees cannot exhaust the call stack.
func (n *node) clone() *node {
	root := &node{visits: n.visits, rewards: n.rewards, discount: n.discount}

	type pair struct {
		src *node
		dst *node
	}
	stack := []pair{{n, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.src.leaf() {
			continue
		}
		p.dst.children = make([]*node, len(p.src.children))
		for k, child := range p.src.children {
			dup := &node{visits: child.visits, rewards: child.rewards, discount: child.discount}
			p.dst.children[k] = dup
			stack = append(stack, pair{child, dup})
		}
	}
	return root
}

// count returns the number of nodes in the subtree rooted at n,
// iteratively.
func (n *node) count() int {
	total := 0
	stack := []*node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		stack = append(stack, cur.children...)
	}
	return total
}

// depth returns the height of the subtree rooted at n, counting n
// itself, iteratively. A leaf has depth 1.
func (n *node) depth() int {
	type frame struct {
		node  *node
		depth int
	}
	max := 0
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		for _, child := range f.node.children {
			stack = append(stack, frame{child, f.depth + 1})
		}
	}
	return max
}
