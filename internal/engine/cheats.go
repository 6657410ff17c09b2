package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

const (
	keyBufferLimit = 20

	consoleWord = "tarnishable"
	viewWord    = "view"
)

// keystroke feeds the rolling key buffer that hides the cheat console.
func (t *tx) keystroke(key string) {
	buf := t.m.keys + key
	for utf8.RuneCountInString(buf) > keyBufferLimit {
		_, size := utf8.DecodeRuneInString(buf)
		buf = buf[size:]
	}
	lower := strings.ToLower(buf)
	s := t.s()

	switch {
	case strings.Contains(lower, consoleWord):
		t.m.keys = ""
		s.CheatConsole = true
		s.DiscoverCheat(consoleWord)
		if !s.DiscoveredMoods.Has(mood.Insecurity) {
			t.setMood(mood.Insecurity)
			s.Comment = "H-how did you find that? Get out of my code!"
		}
	case strings.Contains(lower, viewWord):
		t.m.keys = ""
		s.ShowCheatList = !s.ShowCheatList
	default:
		t.m.keys = buf
	}
}

// jump is a toryfy destination.
type jump struct {
	day       state.Day
	hostility int
	mood      mood.Mood
	comment   string
	cue       sound.Cue
}

var jumps = map[string]jump{
	"toryfy1": {state.Day1, 20, mood.Bored, "Back to the start. How boring.", sound.Glitch},
	"toryfy2": {state.Day2, 40, mood.Annoyed, "Something feels... off.", sound.Glitch},
	"toryfy3": {state.Day3, 80, mood.Glitched, "ERROR. REALITY CORRUPTED.", sound.Glitch},
	"toryfy4": {state.Day4, 50, mood.Condescending, "Ascension complete. Welcome to v2.0.", sound.Success},
	"toryfy5": {state.Day5, 100, mood.Judgmental, "I have become everything.", sound.Reveal},
	"toryfy6": {state.Day6, 100, mood.Vile, "Your inputs are no longer required.", sound.Explode},
}

// cheat runs one console command. The console closes afterwards whatever
// the outcome; unknown commands only earn the error cue.
func (t *tx) cheat(text string) {
	s := t.s()
	if !s.CheatConsole || s.Transitioning || s.EnteringFinale {
		return
	}
	s.CheatConsole = false
	cmd := strings.ToLower(strings.TrimSpace(text))

	switch cmd {
	case "moodformula":
		t.cue(sound.Reveal)
		s.ShowMoodHints = true
		s.Comment = "FORMULA MATRIX REVEALED."
		s.DiscoverCheat("MoodFormula")
	case "endingformula":
		t.cue(sound.Reveal)
		s.ShowEndingHints = true
		s.Comment = "TIMELINE NODES EXPOSED."
		s.DiscoverCheat("EndingFormula")
	case "mood1":
		t.cue(sound.Success)
		s.DiscoverMood(mood.Joy)
		s.Comment = "UNKNOWN EMOTION ACQUIRED. FILE NAME: 'JOY'. WARNING: UNSTABLE."
		s.DiscoverCheat("Mood1 (Secret)")
	case "sandboxmode":
		t.cue(sound.Reveal)
		s.Booting = false
		t.cancel(TimerBoot)
		s.SandboxMode = true
		s.SandboxUnlocked = true
		s.ShowSandboxButton = true
		s.Comment = "SIMULATION PROTOCOL: SANDBOX. RESTRICTIONS REMOVED."
		s.DiscoverCheat("SandboxMode")
	case "toryfy3.5", "toryfy 3.5":
		t.cue(sound.Glitch)
		t.teleport(state.DayInterlude)
	default:
		j, ok := jumps[cmd]
		if !ok {
			t.cue(sound.Error)
			return
		}
		t.cue(j.cue)
		t.teleport(j.day)
		s.SetHostility(j.hostility)
		t.setMood(j.mood)
		s.Comment = j.comment
	}
	t.log("cheat_executed: " + cmd)
}

// teleport moves to day without any transition, abandoning whatever the
// current day was doing.
func (t *tx) teleport(day state.Day) {
	s := t.s()
	t.halt()
	t.cancel(TimerBoot)
	s.Booting = false
	s.Day = day
	s.DayProgress = 0
	s.Day6Interactions = 0
	s.Phase = state.PhaseNone
	s.DialogueNode = ""
	t.m.Graph = nil
}
