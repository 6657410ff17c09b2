package engine

import (
	"time"

	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// Effect is work Update asks the runtime to do. Effects never touch the model;
// their outcomes come back as commands.
type Effect interface {
	isEffect()
}

// Timer names a cancellable scheduled task.
type Timer int

const (
	TimerSequence Timer = iota // narrative beats: outages, finale, endings
	TimerBoot
	TimerIdle
	TimerCycle
)

func (t Timer) String() string {
	switch t {
	case TimerSequence:
		return "sequence"
	case TimerBoot:
		return "boot"
	case TimerIdle:
		return "idle"
	case TimerCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

type PlayCue struct {
	Cue sound.Cue
}

// Schedule asks for TimerFired{Timer, Gen} after After.
type Schedule struct {
	Timer Timer
	Gen   uint64
	After time.Duration
}

// CallOracle asks for a calculation. The answer comes back as OracleResult.
type CallOracle struct {
	Token   uint64
	Request oracle.Request
}

// FetchGreeting asks for a boot greeting. The answer comes back as GreetingResult.
type FetchGreeting struct {
	Token     uint64
	Day       state.Day
	Hostility int
}

// Save persists a snapshot. Stores drop saves older than the last ClearSave.
type Save struct {
	Snapshot state.Snapshot
	Epoch    uint64
}

// ClearSave removes the persisted snapshot and fences off older saves.
type ClearSave struct {
	Epoch uint64
}

// Notify announces a milestone.
type Notify struct {
	Event Event
}

type EventKind string

const (
	EventDayLanded      EventKind = "day_landed"
	EventMoodDiscovered EventKind = "mood_discovered"
	EventEndingUnlocked EventKind = "ending_unlocked"
	EventReboot         EventKind = "reboot"
	EventWipe           EventKind = "wipe"
)

type Event struct {
	Kind   EventKind `json:"kind"`
	Day    state.Day `json:"day"`
	Mood   mood.Mood `json:"mood,omitempty"`
	Ending string    `json:"ending,omitempty"`
}

func (PlayCue) isEffect()       {}
func (Schedule) isEffect()      {}
func (CallOracle) isEffect()    {}
func (FetchGreeting) isEffect() {}
func (Save) isEffect()          {}
func (ClearSave) isEffect()     {}
func (Notify) isEffect()        {}
