package engine

import (
	"time"

	"github.com/jwebster45206/resentcalc/pkg/dialogue"
	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// enterFinale plays the override sequence and opens the conversation.
func (t *tx) enterFinale() {
	s := t.s()
	if s.EnteringFinale || s.Phase != state.PhaseNone {
		return
	}
	s.EnteringFinale = true
	t.log("finale_sequence_initiated")
	t.sequence(
		step{do: func(t *tx) {
			t.cue(sound.Glitch)
			t.s().OutageText = "CRITICAL ERROR"
		}, hold: 1500 * time.Millisecond},
		outage("SYSTEM OVERRIDE INITIATED", 2*time.Second),
		outage("REMOVING USER INTERFACE...", 2500*time.Millisecond),
		step{do: (*tx).openDialogue},
	)
}

// openDialogue builds the graph from the state as it is now.
func (t *tx) openDialogue() {
	s := t.s()
	s.EnteringFinale = false
	s.OutageText = ""
	s.Day = state.Day6
	t.m.Graph = dialogue.Build(s)
	root, err := t.m.Graph.Node(dialogue.Root)
	if err != nil {
		t.e.logger().Error("finale graph has no root", "error", err.Error())
		return
	}
	s.Phase = state.PhaseDecision
	t.show(root)
}

func (t *tx) show(n *dialogue.Node) {
	s := t.s()
	s.DialogueNode = string(n.ID)
	s.Comment = n.Text
	t.setMood(n.Mood)
}

func (t *tx) choose(idx int) {
	s := t.s()
	if (s.Phase != state.PhaseDecision && s.Phase != state.PhaseEndingDialogue) || s.Transitioning || t.m.Graph == nil {
		return
	}
	st, err := t.m.Graph.Choose(dialogue.NodeID(s.DialogueNode), idx)
	if err != nil {
		t.e.logger().Warn("invalid dialogue choice", "node", s.DialogueNode, "index", idx, "error", err.Error())
		return
	}
	t.cue(sound.Click)
	if st.Ending != "" {
		t.resolveEnding(st.Ending)
		return
	}
	s.Phase = state.PhaseEndingDialogue
	t.show(st.Next)
}

// resolveEnding plays an ending's beats, then locks the game on its screen.
func (t *tx) resolveEnding(id ending.ID) {
	beats := ending.Sequence(id)
	if beats == nil {
		t.e.logger().Error("unknown ending", "ending", string(id))
		return
	}
	s := t.s()
	s.Transitioning = true
	s.Booting = false
	t.cancel(TimerBoot)
	t.log("ending_sequence: " + string(id))

	steps := make([]step, 0, len(beats)+1)
	for _, b := range beats {
		steps = append(steps, step{do: func(t *tx) { t.beat(id, b) }, hold: b.Hold})
	}
	steps = append(steps, step{do: func(t *tx) {
		s := t.s()
		s.Phase = state.Phase(id)
		s.Transitioning = false
		s.OutageText = ""
	}})
	t.sequence(steps...)
}

func (t *tx) beat(id ending.ID, b ending.Beat) {
	s := t.s()
	if b.Discover.Valid() {
		s.DiscoverMood(b.Discover)
	}
	if b.Cheat != "" {
		s.DiscoverCheat(b.Cheat)
	}
	if b.Mood.Valid() {
		t.setMood(b.Mood)
	}
	if b.Comment != "" {
		s.Comment = b.Comment
	}
	t.cue(b.Cue)
	if b.Record {
		s.UnlockEnding(string(id))
	}
	if b.UnlockSandbox && !s.SandboxUnlocked {
		s.SandboxUnlocked = true
		s.ShowSandboxButton = true
		t.log("system_unlock: sandbox_mode")
	}
}
