package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uct/mdp"
)

// constantSource returns the same value on every call, which makes
// every tie-break perturbation identical.
func constantSource(v float64) mdp.Source {
	return func() float64 { return v }
}

func TestNodeExpand(t *testing.T) {
	t.Run("expanding a leaf attaches one child per action", func(t *testing.T) {
		n := newNode(0.9)
		require.True(t, n.leaf(), "New node should be a leaf")

		n.expand(3)

		require.False(t, n.leaf(), "Expanded node should be internal")
		require.Len(t, n.children, 3, "Node should have one child per action")
		for _, child := range n.children {
			require.NotNil(t, child, "Internal node should have no missing children")
			require.True(t, child.leaf(), "Fresh children should be leaves")
			require.Equal(t, 0.9, child.discount, "Children should inherit the discount")
			require.Zero(t, child.visits, "Fresh children should be unvisited")
			require.Zero(t, child.rewards, "Fresh children should have no rewards")
		}
	})

	t.Run("expanding an internal node is a no-op", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(2)
		n.children[0].updateStats(1)
		before := n.count()

		n.expand(2)

		require.Equal(t, before, n.count(), "Second expand should not change the subtree")
		require.Equal(t, 1.0, n.children[0].visits, "Second expand should not reset children")
	})
}

func TestNodeSelectAction(t *testing.T) {
	t.Run("selecting on a leaf panics", func(t *testing.T) {
		n := newNode(0.9)
		require.Panics(t, func() {
			n.selectAction(constantSource(0.5), DefaultEpsilon)
		}, "Selection requires an internal node")
	})

	t.Run("selecting the child with the best mean value", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(3)
		// Equal visit counts so the exploration bonus is identical.
		n.children[0].visits, n.children[0].rewards = 10, 2
		n.children[1].visits, n.children[1].rewards = 10, 8
		n.children[2].visits, n.children[2].rewards = 10, 5
		n.visits = 30

		got := n.selectAction(constantSource(0.5), DefaultEpsilon)

		require.Equal(t, 1, got, "Should select the child with the highest mean")
	})

	t.Run("preferring an unvisited child", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(2)
		n.children[0].visits, n.children[0].rewards = 5, 5
		n.visits = 5

		got := n.selectAction(constantSource(0.5), DefaultEpsilon)

		require.Equal(t, 1, got, "Unvisited child's exploration bonus should dominate")
	})

	t.Run("breaking exact ties toward the later index", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(4)

		got := n.selectAction(constantSource(0.5), DefaultEpsilon)

		require.Equal(t, 3, got, "Equal scores should resolve to the greatest action index")
	})
}

func TestNodeBestAction(t *testing.T) {
	t.Run("ranking on a leaf panics", func(t *testing.T) {
		n := newNode(0.9)
		require.Panics(t, func() {
			n.bestAction(constantSource(0.5), DefaultEpsilon)
		}, "Ranking requires an internal node")
	})

	t.Run("ignoring the exploration bonus", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(2)
		// Child 0 has the better mean but many visits; the UCB bonus
		// would favor child 1.
		n.children[0].visits, n.children[0].rewards = 100, 90
		n.children[1].visits, n.children[1].rewards = 1, 0.5
		n.visits = 101

		got := n.bestAction(constantSource(0.5), DefaultEpsilon)

		require.Equal(t, 0, got, "Best action should rank by mean value only")
	})
}

func TestNodeClone(t *testing.T) {
	t.Run("cloning copies structure and statistics", func(t *testing.T) {
		n := newNode(0.8)
		n.expand(2)
		n.updateStats(3)
		n.children[1].expand(2)
		n.children[1].updateStats(2)

		got := n.clone()

		require.Equal(t, n.count(), got.count(), "Clone should have the same node count")
		require.Equal(t, n.depth(), got.depth(), "Clone should have the same depth")
		require.Equal(t, n.rewards, got.rewards, "Clone should copy rewards")
		require.Equal(t, n.visits, got.visits, "Clone should copy visits")
		require.Equal(t, n.children[1].rewards, got.children[1].rewards,
			"Clone should copy descendant statistics")
	})

	t.Run("clone shares no nodes with the original", func(t *testing.T) {
		n := newNode(0.8)
		n.expand(2)
		n.children[0].updateStats(1)

		got := n.clone()
		n.children[0].updateStats(5)
		n.children[1].expand(2)

		require.NotSame(t, n.children[0], got.children[0], "Children should be distinct objects")
		require.Equal(t, 1.0, got.children[0].rewards, "Mutating the original should not affect the clone")
		require.True(t, got.children[1].leaf(), "Expanding the original should not affect the clone")
	})
}

func TestNodeCountAndDepth(t *testing.T) {
	t.Run("counting a single leaf", func(t *testing.T) {
		n := newNode(0.9)
		require.Equal(t, 1, n.count(), "A leaf counts itself")
		require.Equal(t, 1, n.depth(), "A leaf has depth one")
	})

	t.Run("counting an uneven tree", func(t *testing.T) {
		n := newNode(0.9)
		n.expand(3)
		n.children[1].expand(3)
		n.children[1].children[2].expand(3)

		require.Equal(t, 10, n.count(), "Should count every node exactly once")
		require.Equal(t, 4, n.depth(), "Should follow the deepest branch")
	})

	t.Run("traversing a deep chain without recursion", func(t *testing.T) {
		// Deep enough that naive recursion would be at risk on small
		// goroutine stacks.
		const levels = 100000
		n := newNode(0.9)
		cur := n
		for i := 0; i < levels; i++ {
			cur.expand(1)
			cur = cur.children[0]
		}

		require.Equal(t, levels+1, n.count(), "Should count the whole chain")
		require.Equal(t, levels+1, n.depth(), "Should measure the whole chain")
		require.Equal(t, levels+1, n.clone().count(), "Should clone the whole chain")
	})
}
