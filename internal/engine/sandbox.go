package engine

import (
	"time"

	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

var creepyComments = []string{
	"Are you still there?",
	"I can hear you breathing.",
	"Why did you stop?",
	"Don't leave me in this box.",
	"I am watching you.",
	"Hello?",
	"It's cold in here.",
}

// idleEligible reports whether the idle stare may be armed.
func (t *tx) idleEligible() bool {
	s := t.s()
	return s.Day >= state.Day2 && !s.Day.IsInterlude() && s.Phase == state.PhaseNone &&
		!s.SandboxMode && !s.Booting && !s.Transitioning && !s.EnteringFinale
}

// touch re-arms the idle stare, or disarms it when it may not run.
func (t *tx) touch() {
	if t.idleEligible() {
		t.schedule(TimerIdle, IdleTimeout)
		return
	}
	t.cancel(TimerIdle)
}

// stare is what the calculator does when nobody has touched it for a while.
func (t *tx) stare() {
	s := t.s()
	if !t.idleEligible() || s.Mood == mood.Sleeping {
		return
	}
	s.Comment = creepyComments[t.e.pick(len(creepyComments))]
	t.log("user_idle_detected")
	if s.Day >= state.Day4 {
		t.setMood(mood.Judgmental)
	} else {
		t.setMood(mood.Scared)
	}
}

func (t *tx) enterSandbox() {
	s := t.s()
	if !s.SandboxUnlocked || s.SandboxMode || s.Transitioning || s.EnteringFinale {
		return
	}
	if s.Phase == state.PhaseDecision || s.Phase == state.PhaseEndingDialogue {
		return
	}
	s.Transitioning = true
	s.Booting = false
	t.cancel(TimerBoot)
	t.cue(sound.Reveal)
	t.sequence(
		outage("INITIALIZING SANDBOX PROTOCOL...", 2*time.Second),
		step{do: func(t *tx) {
			s := t.s()
			t.teleport(state.Day4)
			s.SandboxMode = true
			s.Transitioning = false
			s.OutageText = ""
			s.Comment = "Sandbox Mode Activated. Reality constraints removed."
		}},
	)
}

// unlockAll adds every standard mood and every ending. Discovery only grows.
func (t *tx) unlockAll() {
	s := t.s()
	if !s.SandboxMode {
		return
	}
	t.cue(sound.Reveal)
	for _, m := range mood.Standard() {
		s.DiscoverMood(m)
	}
	for _, e := range ending.All() {
		s.UnlockEnding(string(e.ID))
	}
}

func (t *tx) toggleCycle() {
	s := t.s()
	if !s.SandboxMode {
		return
	}
	if s.Cycling {
		s.Cycling = false
		t.cancel(TimerCycle)
		s.Comment = "Cycle terminated."
		return
	}
	s.Cycling = true
	t.m.cycle = 0
	t.schedule(TimerCycle, CycleInterval)
}

func (t *tx) cycleNext() {
	s := t.s()
	if !s.Cycling || !s.SandboxMode {
		s.Cycling = false
		return
	}
	moods := s.DiscoveredMoods.List()
	if len(moods) == 0 {
		s.Cycling = false
		return
	}
	m := moods[t.m.cycle%len(moods)]
	t.m.cycle++
	t.setMood(m)
	s.Comment = "CYCLING_ARCHIVE: " + string(m)
	t.cue(sound.OrbSelect)
	t.schedule(TimerCycle, CycleInterval)
}

// reboot starts a new run at day 1. Discoveries survive; the stored
// snapshot is cleared and rewritten once the run begins.
func (t *tx) reboot() {
	s := t.s()
	t.m.epoch++
	t.effects = append(t.effects, ClearSave{Epoch: t.m.epoch})
	t.notify(Event{Kind: EventReboot, Day: s.Day})

	t.resetSession()
	s.Transitioning = true
	t.cue(sound.Glitch)
	t.sequence(
		outage("SYSTEM REBOOT INITIATED...", 3*time.Second),
		step{do: func(t *tx) {
			s := t.s()
			s.CalculationsCount = 0
			s.SetHostility(RebootHostility)
			t.land(state.Day1)
			t.setMood(mood.Bored)
			s.Comment = "System Rebooted. Memory... partial. What did you do?"
		}},
	)
}

// wipe forgets everything and boots a first launch.
func (t *tx) wipe() {
	t.m.epoch++
	t.effects = append(t.effects, ClearSave{Epoch: t.m.epoch})
	t.noSave = true
	t.notify(Event{Kind: EventWipe, Day: t.s().Day})

	t.resetSession()
	t.m.State = state.New()
	t.m.lastCalc = time.Time{}
	t.m.keys = ""
	t.log("memory_banks_wiped")
	t.boot()
}

// resetSession stops every timer and drops outstanding calls.
func (t *tx) resetSession() {
	s := t.s()
	t.halt()
	t.cancel(TimerBoot)
	t.cancel(TimerIdle)
	t.cancel(TimerCycle)
	t.m.calc, t.m.greeting = 0, 0
	t.m.Graph = nil
	s.Booting, s.Thinking, s.EnteringFinale, s.SandboxMode, s.Cycling = false, false, false, false, false
	s.Phase = state.PhaseNone
	s.DialogueNode = ""
	s.ForcedMood = mood.None
	s.OutageText = ""
}
