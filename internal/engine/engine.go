// Package engine is the narrative reducer: every player action, timer and
// oracle answer goes through Update, which returns the next model and the
// effects the runtime must carry out.
package engine

import (
	"log/slog"
	"math/rand/v2"
	"reflect"
	"time"

	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

const (
	DayDuration   = 300 * time.Second
	BootDuration  = 4 * time.Second
	IdleTimeout   = 15 * time.Second
	CycleInterval = 2 * time.Second

	// RapidFireWindow is how close two calculations must be to provoke.
	RapidFireWindow    = 2 * time.Second
	RapidFireIncrement = 5

	RebootHostility = 10
)

// progressPerTick is the share of a day one Tick adds, in percent.
var progressPerTick = 100 / DayDuration.Seconds()

// Engine holds the collaborators Update needs. The zero value is usable.
type Engine struct {
	Clock  Clock
	Logger *slog.Logger
	Pick   func(n int) int // random index in [0,n)
}

func New(clock Clock, logger *slog.Logger) *Engine {
	return &Engine{Clock: clock, Logger: logger}
}

func (e *Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e *Engine) pick(n int) int {
	if n <= 0 {
		return 0
	}
	if e.Pick == nil {
		return rand.IntN(n)
	}
	return e.Pick(n)
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Update applies cmd to a copy of m.
func (e *Engine) Update(m Model, cmd Command) (Model, []Effect) {
	next := m.Clone()
	if next.State == nil {
		next = NewModel(nil)
	}
	if next.gens == nil {
		next.gens = make(map[Timer]uint64)
	}
	t := &tx{e: e, m: &next}

	before := next.State.Snapshot()
	idleBefore := t.idleEligible()

	t.apply(cmd)

	if userInput(cmd) || idleBefore != t.idleEligible() {
		t.touch()
	}
	t.announce(before)
	if after := next.State.Snapshot(); !t.noSave && !reflect.DeepEqual(before, after) {
		t.effects = append(t.effects, Save{Snapshot: after, Epoch: next.epoch})
	}
	return next, t.effects
}

// tx is one Update in progress.
type tx struct {
	e       *Engine
	m       *Model
	effects []Effect
	noSave  bool
}

func (t *tx) s() *state.NarrativeState {
	return t.m.State
}

func (t *tx) apply(cmd Command) {
	if t.s().Phase.Terminal() {
		switch cmd.(type) {
		case Reboot, Wipe, EnterSandbox, ToggleSound, TimerFired, CloseOverlays:
		default:
			return
		}
	}

	switch c := cmd.(type) {
	case Start:
		t.start()
	case Submit:
		t.submit(c.Expression)
	case OracleResult:
		t.oracleResult(c)
	case GreetingResult:
		t.greetingResult(c)
	case Clear:
		t.clear()
	case ForceMood:
		t.forceMood(c)
	case Tick:
		t.tick()
	case Skip:
		t.skip()
	case TimerFired:
		t.fired(c)
	case MinigameComplete:
		t.minigameComplete()
	case Choose:
		t.choose(c.Index)
	case Keystroke:
		t.keystroke(c.Key)
	case Cheat:
		t.cheat(c.Text)
	case CloseOverlays:
		s := t.s()
		s.CheatConsole, s.ShowCheatList, s.ShowMoodHints, s.ShowEndingHints = false, false, false, false
	case ToggleSound:
		t.s().SoundEnabled = !t.s().SoundEnabled
		t.cue(sound.Click)
	case EnterSandbox:
		t.enterSandbox()
	case SetHostility:
		if t.s().SandboxMode {
			t.s().SetHostility(c.Value)
		}
	case UnlockAll:
		t.unlockAll()
	case ToggleCycle:
		t.toggleCycle()
	case Reboot:
		t.reboot()
	case Wipe:
		t.wipe()
	default:
		t.e.logger().Warn("unknown command", "type", reflect.TypeOf(cmd).String())
	}
}

func (t *tx) cue(c sound.Cue) {
	if c == sound.None || !t.s().SoundEnabled {
		return
	}
	t.effects = append(t.effects, PlayCue{Cue: c})
}

// log appends to the in-game system log and mirrors it to slog.
func (t *tx) log(line string) {
	t.s().AddLog(line)
	t.e.logger().Debug("system log", "line", line, "day", t.s().Day.String())
}

func (t *tx) bump(timer Timer) uint64 {
	t.m.gens[timer]++
	return t.m.gens[timer]
}

// schedule replaces any outstanding timer of the same kind.
func (t *tx) schedule(timer Timer, after time.Duration) {
	gen := t.bump(timer)
	t.effects = append(t.effects, Schedule{Timer: timer, Gen: gen, After: after})
}

// cancel makes any outstanding timer of this kind stale.
func (t *tx) cancel(timer Timer) {
	t.bump(timer)
}

func (t *tx) fired(c TimerFired) {
	if c.Gen != t.m.gens[c.Timer] {
		t.e.logger().Debug("stale timer dropped", "timer", c.Timer.String(), "gen", c.Gen, "current", t.m.gens[c.Timer])
		return
	}
	t.bump(c.Timer) // consumed
	switch c.Timer {
	case TimerSequence:
		t.advance()
	case TimerBoot:
		t.bootComplete()
	case TimerIdle:
		t.stare()
	case TimerCycle:
		t.cycleNext()
	}
}

// announce emits Notify effects for milestones reached during this update.
func (t *tx) announce(before state.Snapshot) {
	s := t.s()
	if s.Day != before.Day {
		t.notify(Event{Kind: EventDayLanded, Day: s.Day})
	}
	for _, m := range s.DiscoveredMoods.List() {
		if !before.DiscoveredMoods.Has(m) {
			t.notify(Event{Kind: EventMoodDiscovered, Day: s.Day, Mood: m})
		}
	}
	for _, id := range s.UnlockedEndings.List() {
		if !before.UnlockedEndings.Has(id) {
			t.notify(Event{Kind: EventEndingUnlocked, Day: s.Day, Ending: id})
		}
	}
}

func (t *tx) notify(ev Event) {
	t.effects = append(t.effects, Notify{Event: ev})
}
