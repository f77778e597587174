package searcher

import "perfectplay/game"

// Node is one position in a search tree. Nodes refer to each other by index into the tree.
type Node struct {
	State    game.State
	Move     game.Move // Move that led here, nil at the root
	Parent   int       // -1 at the root
	Depth    int
	Children []int
	Score    int
	scored   bool
}

// Tree is a fully expanded and scored game tree. Index 0 is the root.
type Tree struct {
	nodes []Node
}

func newTree(root game.State) *Tree {
	return &Tree{nodes: []Node{{State: root, Parent: -1}}}
}

func (t *Tree) Root() int {
	return 0
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

func (t *Tree) Children(i int) []int {
	return append([]int(nil), t.nodes[i].Children...)
}

func (t *Tree) Score(i int) int {
	return t.nodes[i].Score
}

func (t *Tree) Move(i int) game.Move {
	return t.nodes[i].Move
}

func (t *Tree) State(i int) game.State {
	return t.nodes[i].State
}

// Scored reports whether the score of node i is final.
func (t *Tree) Scored(i int) bool {
	return t.nodes[i].scored
}

func (t *Tree) add(parent int, move game.Move) int {
	p := t.nodes[parent]
	t.nodes = append(t.nodes, Node{
		State:  play(p.State, move),
		Move:   move,
		Parent: parent,
		Depth:  p.Depth + 1,
	})
	child := len(t.nodes) - 1
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	return child
}

func (t *Tree) childScores(i int) []int {
	scores := make([]int, len(t.nodes[i].Children))
	for j, child := range t.nodes[i].Children {
		scores[j] = t.nodes[child].Score
	}
	return scores
}

func (t *Tree) setScore(i, score int) {
	t.nodes[i].Score = score
	t.nodes[i].scored = true
}
