package searcher

import "pacai/game"

const noParent = -1

// node is one point of the search tree. Nodes live in a tree arena and refer
// to their parent by index; the link is only read to compute rewards.
type node struct {
	parent      int
	depth       int
	move        game.Move // Move that produced this node
	initialMove game.Move // Root move that began this node's path
	accReward   float64   // Discounted return from the root
	priority    int
	state       game.State
}

func (n *node) isRoot() bool {
	return n.parent == noParent
}

// tree is the arena owning every node kept during one search. It is
// released in one piece when the search ends.
type tree struct {
	nodes []node
}

func newTree(state game.State, prev game.Move) *tree {
	t := &tree{nodes: make([]node, 0, 64)}
	t.add(node{parent: noParent, move: prev, state: state})
	return t
}

func (t *tree) add(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *tree) get(id int) *node {
	return &t.nodes[id]
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) release() {
	t.nodes = nil
}

// applyAction builds the child reached by playing action from the parent
// stored at parentID. It reports whether the move was legal; an illegal
// child must be discarded.
func applyAction(transition game.Transition, reward RewardConfig, parent *node, parentID int, action game.Move) (node, bool) {
	child := node{state: parent.state}
	legal := transition.Apply(&child.state, action)

	// Keep track of the first move of this path
	child.initialMove = parent.initialMove
	if parent.isRoot() {
		child.initialMove = action
	}
	child.move = action
	child.parent = parentID
	child.depth = parent.depth + 1
	child.accReward = parent.accReward + reward.reward(&parent.state, &child.state, child.depth)
	child.priority = -child.depth

	return child, legal
}
