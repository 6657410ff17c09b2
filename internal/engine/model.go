package engine

import (
	"time"

	"github.com/jwebster45206/resentcalc/pkg/dialogue"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// Model is the whole engine state. Update never mutates the Model it is
// given; it returns a new one.
type Model struct {
	State *state.NarrativeState
	Graph *dialogue.Graph // built when the finale starts

	gens      map[Timer]uint64
	pending   []step
	nextToken uint64
	calc      uint64    // token of the outstanding calculation
	calcDay   state.Day // day the outstanding calculation was asked on
	greeting  uint64    // token of the outstanding greeting
	lastCalc  time.Time
	epoch     uint64
	keys      string
	cycle     int
}

// NewModel restores a model from snap, or starts fresh when snap is nil.
func NewModel(snap *state.Snapshot) Model {
	s := state.New()
	if snap != nil {
		s.Restore(*snap)
	}
	return Model{
		State: s,
		gens:  make(map[Timer]uint64),
	}
}

// Clone returns a deep copy.
func (m Model) Clone() Model {
	c := m
	if m.State != nil {
		c.State = m.State.Clone()
	}
	c.gens = make(map[Timer]uint64, len(m.gens))
	for k, v := range m.gens {
		c.gens[k] = v
	}
	c.pending = append([]step(nil), m.pending...)
	return c
}

// Gen is the current generation of t. Only TimerFired events carrying it apply.
func (m Model) Gen(t Timer) uint64 {
	return m.gens[t]
}

// Epoch is the persistence epoch; it advances on every reboot and wipe.
func (m Model) Epoch() uint64 {
	return m.epoch
}

// Node is the dialogue node on screen, or nil outside the finale conversation.
func (m Model) Node() *dialogue.Node {
	if m.Graph == nil {
		return nil
	}
	switch m.State.Phase {
	case state.PhaseDecision, state.PhaseEndingDialogue:
	default:
		return nil
	}
	n, err := m.Graph.Node(dialogue.NodeID(m.State.DialogueNode))
	if err != nil {
		return nil
	}
	return n
}

// Sequencing reports whether a narrative sequence still has beats to play.
func (m Model) Sequencing() bool {
	return len(m.pending) > 0
}
