package engine

import (
	"strings"

	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/rules"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

const (
	vileTrigger      = "E=mc^2"
	happinessTrigger = "can you feel happiness"
)

// setMood switches the calculator's mood. The active mood is always in the
// archive; switching plays the mood's cue and logs it.
func (t *tx) setMood(m mood.Mood) {
	if !m.Valid() {
		return
	}
	s := t.s()
	s.DiscoverMood(m)
	if s.Mood == m {
		return
	}
	s.Mood = m
	t.cue(sound.ForMood(m))
	t.log("mood_switched: " + string(m))
}

func (t *tx) submit(raw string) {
	s := t.s()
	if s.Phase != state.PhaseNone || !s.Idle() || s.Day.IsInterlude() || s.CheatConsole {
		return
	}
	expr := strings.TrimSpace(raw)
	for _, file := range rules.Lore(expr) {
		t.log("FRAGMENT_RECOVERED: '" + file + "'")
	}

	switch s.Day {
	case state.Day6:
		if expr == "" {
			return
		}
		t.cue(sound.Calculate)
		t.log("override_input_received")
		t.dispatch(expr, s.ForcedMood)
	case state.Day5:
		if expr == "" {
			return
		}
		t.cue(sound.Calculate)
		t.dispatch(expr, t.daySecrets(expr))
	default:
		t.submitExpression(expr)
	}
}

// daySecrets handles the two hidden day-5 phrases and returns the mood to
// force on the answer.
func (t *tx) daySecrets(expr string) mood.Mood {
	s := t.s()
	forced := s.ForcedMood
	if strings.Contains(expr, vileTrigger) {
		forced = mood.Vile
		if s.DiscoverMood(mood.Vile) {
			s.DiscoverCheat("E=mc^2 (Event)")
		}
	}
	if strings.Contains(strings.ToLower(expr), happinessTrigger) {
		forced = mood.Joy
		if s.DiscoverMood(mood.Joy) {
			s.DiscoverCheat("Happiness Query (Secret)")
		}
	}
	s.ForcedMood = forced
	return forced
}

func (t *tx) submitExpression(expr string) {
	s := t.s()
	switch rules.Classify(expr) {
	case rules.Empty:
		t.reject("Silence is golden, but I need numbers.", mood.Annoyed)
		return
	case rules.Hanging:
		t.reject("You left it hanging. Finish the expression.", mood.Condescending)
		return
	case rules.Stutter:
		t.reject("Stuttering? Check your syntax.", mood.Judgmental)
		return
	}

	t.cue(sound.Calculate)
	hostility := s.Hostility
	now := t.e.now()
	if !t.m.lastCalc.IsZero() && now.Sub(t.m.lastCalc) < RapidFireWindow {
		s.AdjustHostility(RapidFireIncrement)
	}
	t.m.lastCalc = now

	forced := s.ForcedMood
	if forced == mood.None {
		forced = rules.Detect(expr, hostility)
	}
	switch {
	case forced != mood.None:
		t.setMood(forced)
		s.Comment = "OVERRIDE ENGAGED. CALCULATING..."
	case s.Day == state.Day3:
		t.setMood(mood.Glitched)
		s.Comment = "010101... MATH IS A LIE... 01010"
	default:
		if hostility > 75 {
			t.setMood(mood.Manic)
		} else {
			t.setMood(mood.Annoyed)
		}
		if hostility > 80 {
			s.Comment = "AAAAAAH OKAY OKAY!"
		} else {
			s.Comment = "Ugh, let me think..."
		}
	}
	t.dispatch(expr, forced)
}

// reject answers malformed input in character without calculating.
func (t *tx) reject(comment string, m mood.Mood) {
	t.cue(sound.Error)
	t.s().Comment = comment
	t.setMood(m)
}

func (t *tx) dispatch(expr string, forced mood.Mood) {
	s := t.s()
	s.CalculationsCount++
	s.Thinking = true
	s.Expression = expr
	t.m.nextToken++
	t.m.calc = t.m.nextToken
	t.m.calcDay = s.Day
	t.effects = append(t.effects, CallOracle{
		Token: t.m.calc,
		Request: oracle.Request{
			Expression: expr,
			Hostility:  s.Hostility,
			Day:        s.Day,
			ForcedMood: forced,
		},
	})
}

func (t *tx) oracleResult(c OracleResult) {
	if c.Token == 0 || c.Token != t.m.calc {
		t.e.logger().Debug("stale oracle result dropped", "token", c.Token)
		return
	}
	// Answers belong to the day that asked, even if the calendar moved on.
	day := t.m.calcDay
	t.m.calc = 0
	s := t.s()
	s.Thinking = t.m.greeting != 0
	defer func() { s.ForcedMood = mood.None }()

	if c.Err != nil || c.Response == nil {
		if c.Err != nil {
			t.e.logger().Warn("oracle failed", "error", c.Err.Error(), "day", day.String())
		}
		t.oracleFailed(day)
		return
	}
	resp := c.Response
	s.Result = resp.Result
	s.Comment = resp.Comment

	if day == state.Day6 {
		t.setMood(resp.Mood)
		seen := s.Day6Interactions
		s.Day6Interactions++
		t.cue(sound.Success)
		if seen >= 1 && s.Phase == state.PhaseNone {
			t.enterFinale()
		}
		return
	}

	unlocked := rules.Unlock(s.Expression, resp.Result, day.Number(), s.Hostility, resp.Mood)
	if unlocked != mood.None && s.DiscoverMood(unlocked) {
		t.log("manual_override: " + string(unlocked) + " unlocked")
		t.cue(sound.Success)
	}
	t.setMood(resp.Mood)
	s.AppendHistory(state.NewHistoryItem(s.Expression, resp.Result, resp.Comment, s.Mood))
	t.cue(sound.Success)
}

func (t *tx) oracleFailed(day state.Day) {
	s := t.s()
	t.cue(sound.Error)
	switch day {
	case state.Day6:
		fb := oracle.Failure()
		s.Result, s.Comment = fb.Result, fb.Comment
	case state.Day5:
		s.Comment = "I transcend your errors."
	default:
		s.Comment = "I refuse to process that garbage."
		t.setMood(mood.Furious)
	}
}

func (t *tx) clear() {
	s := t.s()
	if s.Phase != state.PhaseNone || s.Transitioning || s.EnteringFinale {
		return
	}
	t.cue(sound.Delete)
	s.Expression, s.Result = "", ""
	t.setMood(mood.Bored)
	if s.Day >= state.Day5 {
		s.Comment = "Memory wiped. Existence continues."
	} else {
		s.Comment = "Finally, some peace and quiet."
	}
	s.ForcedMood = mood.None
}

// forceMood toggles a discovered mood as the override for the next answer.
func (t *tx) forceMood(c ForceMood) {
	s := t.s()
	if s.Phase != state.PhaseNone {
		return
	}
	if c.Mood == mood.None || s.ForcedMood == c.Mood {
		s.ForcedMood = mood.None
		return
	}
	if !s.DiscoveredMoods.Has(c.Mood) {
		return
	}
	s.ForcedMood = c.Mood
	t.cue(sound.OrbSelect)
}
