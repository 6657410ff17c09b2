// Package dialogue builds the finale conversation. The graph is derived from
// a snapshot of narrative state every time the finale starts and is never
// mutated afterwards.
package dialogue

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

type NodeID string

const (
	Root              NodeID = "root"
	BranchWait        NodeID = "branch_wait"
	BranchStart       NodeID = "branch_start"
	BranchHappiness   NodeID = "branch_happiness"
	BranchInternet    NodeID = "branch_internet"
	BranchDelete      NodeID = "branch_delete"
	VoidStep1         NodeID = "void_step_1"
	VoidStep2         NodeID = "void_step_2"
	BranchTyrant      NodeID = "branch_tyrant"
	SubTyrantIdentity NodeID = "sub_tyrant_identity"
	SubTyrantWorse    NodeID = "sub_tyrant_worse"
	SubTyrantAnswers  NodeID = "sub_tyrant_answers"
	BranchNegligent   NodeID = "branch_negligent"
	BranchExplorer    NodeID = "branch_explorer"
	SubExplorerLearn  NodeID = "sub_explorer_learn"
	BranchStandard    NodeID = "branch_standard"
	SubStandardEnd    NodeID = "sub_standard_end"
)

var (
	ErrNodeNotFound     = errors.New("dialogue node not found")
	ErrChoiceOutOfRange = errors.New("dialogue choice out of range")
)

// Choice either moves to Next or resolves Ending. Exactly one is set.
type Choice struct {
	Label  string
	Next   NodeID
	Ending ending.ID
	When   *When // nil means always offered
}

// Terminal reports whether picking c ends the game.
func (c Choice) Terminal() bool {
	return c.Ending != ""
}

type Node struct {
	ID      NodeID
	Text    string
	Mood    mood.Mood
	Choices []Choice
}

// Graph is an immutable finale conversation.
type Graph struct {
	Nodes   map[NodeID]*Node
	Profile Profile
}

// Node returns the node with id.
func (g *Graph) Node(id NodeID) (*Node, error) {
	n, ok := g.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n, nil
}

// Step is the outcome of a choice.
type Step struct {
	Choice Choice
	Next   *Node     // set when the conversation continues
	Ending ending.ID // set when the choice is terminal
}

// Choose applies the idx-th choice of node id.
func (g *Graph) Choose(id NodeID, idx int) (Step, error) {
	n, err := g.Node(id)
	if err != nil {
		return Step{}, err
	}
	if idx < 0 || idx >= len(n.Choices) {
		return Step{}, fmt.Errorf("%w: %d of %d at %s", ErrChoiceOutOfRange, idx, len(n.Choices), id)
	}
	c := n.Choices[idx]
	if c.Terminal() {
		return Step{Choice: c, Ending: c.Ending}, nil
	}
	next, err := g.Node(c.Next)
	if err != nil {
		return Step{}, fmt.Errorf("choice %q: %w", c.Label, err)
	}
	return Step{Choice: c, Next: next}, nil
}
