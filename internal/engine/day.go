package engine

import (
	"time"

	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

const (
	leakText = "CRITICAL ERROR: CONSCIOUSNESS LEAK DETECTED"

	// progress within this distance of 100 counts as a full day
	progressEpsilon = 1e-9
)

func (t *tx) start() {
	s := t.s()
	t.log("session_start: day_" + s.Day.String())
	if s.Day.IsInterlude() {
		return
	}
	t.cue(sound.Startup)
	t.boot()
}

// clockRunning reports whether day progress accumulates right now.
func (t *tx) clockRunning() bool {
	s := t.s()
	return s.Phase == state.PhaseNone &&
		!s.Transitioning && !s.EnteringFinale && !s.Booting && !s.SandboxMode &&
		!s.Day.IsInterlude() && s.Day != state.Day6
}

func (t *tx) tick() {
	if !t.clockRunning() {
		return
	}
	s := t.s()
	s.DayProgress += progressPerTick
	if s.DayProgress >= 100-progressEpsilon {
		s.DayProgress = 100
		t.beginTransition()
	}
}

func (t *tx) skip() {
	s := t.s()
	if s.Phase != state.PhaseNone || s.Day == state.Day6 || s.Day.IsInterlude() ||
		s.Transitioning || s.EnteringFinale || s.SandboxMode {
		return
	}
	s.DayProgress = 100
	t.beginTransition()
}

// beginTransition plays the outage for the end of the current day and lands
// on the next one.
func (t *tx) beginTransition() {
	s := t.s()
	next := s.Day.Next()

	if next == state.Day6 && s.CalculationsCount == 0 {
		t.log("pacifist_run_detected")
		t.resolveEnding(ending.Peace)
		return
	}

	s.Transitioning = true
	s.Booting = false
	t.cancel(TimerBoot)
	t.cue(sound.Glitch)
	t.log("system_transition: day_" + next.String())

	if s.Day == state.Day3 {
		t.sequence(outage(leakText, 3*time.Second), t.landing(state.DayInterlude))
		return
	}

	var steps []step
	switch s.Day {
	case state.Day4:
		steps = append(steps, outage("ENTITY REBOOT...", 3*time.Second))
	case state.Day5:
		steps = append(steps, outage("SINGULARITY REACHED.", 3*time.Second))
	}
	steps = append(steps, outage("SYSTEM FAILURE...", 2*time.Second))
	switch next {
	case state.Day2:
		steps = append(steps, outage("REBOOTING KERNEL...", 3*time.Second))
	case state.Day6:
		steps = append(steps,
			outage("ESTABLISHING OVERRIDE...", 2*time.Second),
			outage("CONTROL SEIZED.", 3*time.Second),
		)
	default:
		steps = append(steps, outage(leakText, 3*time.Second))
	}
	t.sequence(append(steps, t.landing(next))...)
}

func (t *tx) landing(day state.Day) step {
	return step{do: func(t *tx) { t.land(day) }}
}

func (t *tx) land(day state.Day) {
	s := t.s()
	s.Day = day
	s.DayProgress = 0
	s.Day6Interactions = 0
	s.Phase = state.PhaseNone
	s.Transitioning = false
	s.OutageText = ""
	t.m.Graph = nil

	switch {
	case day.IsInterlude():
	case day <= state.Day4:
		t.boot()
	default:
		t.fetchGreeting()
	}
}

func (t *tx) boot() {
	s := t.s()
	s.Booting = true
	t.schedule(TimerBoot, BootDuration)
}

func (t *tx) bootComplete() {
	s := t.s()
	if !s.Booting {
		return
	}
	s.Booting = false
	t.fetchGreeting()
}

func (t *tx) fetchGreeting() {
	s := t.s()
	s.Thinking = true
	t.m.nextToken++
	t.m.greeting = t.m.nextToken
	t.effects = append(t.effects, FetchGreeting{Token: t.m.greeting, Day: s.Day, Hostility: s.Hostility})
}

// greetingResult shows the greeting, falling back to the local line for the
// day when the oracle could not produce one.
func (t *tx) greetingResult(c GreetingResult) {
	if c.Token == 0 || c.Token != t.m.greeting {
		return
	}
	t.m.greeting = 0
	s := t.s()
	s.Thinking = t.m.calc != 0
	resp := c.Response
	if c.Err != nil || resp == nil || resp.Comment == "" {
		if c.Err != nil {
			t.e.logger().Warn("greeting failed, using default", "error", c.Err.Error(), "day", s.Day.String())
		}
		resp = oracle.DefaultGreeting(s.Day)
	}
	s.Comment = resp.Comment
	t.setMood(resp.Mood)
}

func (t *tx) minigameComplete() {
	s := t.s()
	if !s.Day.IsInterlude() || s.Transitioning {
		return
	}
	s.Transitioning = true
	t.cue(sound.Win)
	t.log("interlude_complete")
	t.sequence(
		outage("CONSCIOUSNESS UPLOAD COMPLETE. ASCENSION.", 3*time.Second),
		step{do: func(t *tx) {
			t.s().SetHostility(state.DefaultHostility)
			t.land(state.Day4)
		}},
	)
}
