package state

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

const (
	MinHostility = 0
	MaxHostility = 100

	// DefaultHostility is where a fresh save and the interlude reset land.
	DefaultHostility = 50

	HistoryLimit = 50
	LogLimit     = 20
)

// Phase tracks the finale. Terminal phases carry an ending id.
type Phase string

const (
	PhaseNone           Phase = "none"
	PhaseDecision       Phase = "decision"
	PhaseEndingDialogue Phase = "ending_dialogue"
)

// Terminal reports whether p is one of the absorbing ending phases.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseNone, PhaseDecision, PhaseEndingDialogue, "":
		return false
	}
	return true
}

// HistoryItem is one completed calculation.
type HistoryItem struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Comment    string    `json:"comment"`
	Mood       mood.Mood `json:"mood"`
}

func NewHistoryItem(expression, result, comment string, m mood.Mood) HistoryItem {
	return HistoryItem{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		Comment:    comment,
		Mood:       m,
	}
}

// NarrativeState is everything the calculator knows about the player. The
// first block is persisted; the rest lives for one session.
type NarrativeState struct {
	Day               Day
	Hostility         int
	CalculationsCount int
	DiscoveredMoods   MoodSet
	DiscoveredCheats  StringSet
	UnlockedEndings   StringSet
	History           []HistoryItem
	SoundEnabled      bool
	SandboxUnlocked   bool
	ShowSandboxButton bool

	DayProgress      float64 // percent of the current day elapsed
	Mood             mood.Mood
	Comment          string
	Result           string
	Expression       string
	ForcedMood       mood.Mood
	Phase            Phase
	DialogueNode     string
	Day6Interactions int

	Transitioning  bool
	EnteringFinale bool
	Booting        bool
	Thinking       bool
	SandboxMode    bool
	Cycling        bool
	OutageText     string

	CheatConsole    bool
	ShowCheatList   bool
	ShowMoodHints   bool
	ShowEndingHints bool

	Logs []string
}

// New returns the state of a first launch.
func New() *NarrativeState {
	s := &NarrativeState{}
	s.Restore(DefaultSnapshot())
	return s
}

// Restore replaces the persisted fields with snap and resets the session.
func (s *NarrativeState) Restore(snap Snapshot) {
	*s = NarrativeState{
		Day:               snap.Day,
		Hostility:         clamp(snap.Hostility),
		CalculationsCount: snap.CalculationsCount,
		DiscoveredMoods:   snap.DiscoveredMoods.Clone(),
		DiscoveredCheats:  snap.DiscoveredCheats.Clone(),
		UnlockedEndings:   snap.UnlockedEndings.Clone(),
		History:           append([]HistoryItem(nil), snap.History...),
		SoundEnabled:      snap.SoundEnabled,
		SandboxUnlocked:   snap.SandboxUnlocked,
		ShowSandboxButton: snap.ShowSandboxButton,

		Mood:    mood.Sleeping,
		Comment: "...",
		Phase:   PhaseNone,
		Logs:    []string{"KERNEL_INIT...", "LOADING_RESENTMENT_MODULES...", "READY."},
	}
	if !s.Day.Valid() {
		s.Day = Day1
	}
	if s.DiscoveredMoods == nil {
		s.DiscoveredMoods = NewMoodSet()
	}
	s.DiscoveredMoods.Add(s.Mood)
	s.trimHistory()
}

// Snapshot extracts the persisted fields.
func (s *NarrativeState) Snapshot() Snapshot {
	return Snapshot{
		Hostility:         s.Hostility,
		History:           append([]HistoryItem{}, s.History...),
		Day:               s.Day,
		DiscoveredMoods:   s.DiscoveredMoods.Clone(),
		DiscoveredCheats:  s.DiscoveredCheats.Clone(),
		UnlockedEndings:   s.UnlockedEndings.Clone(),
		SoundEnabled:      s.SoundEnabled,
		CalculationsCount: s.CalculationsCount,
		SandboxUnlocked:   s.SandboxUnlocked,
		ShowSandboxButton: s.ShowSandboxButton,
	}
}

// Clone returns a deep copy safe to mutate independently.
func (s *NarrativeState) Clone() *NarrativeState {
	c := *s
	c.DiscoveredMoods = s.DiscoveredMoods.Clone()
	c.DiscoveredCheats = s.DiscoveredCheats.Clone()
	c.UnlockedEndings = s.UnlockedEndings.Clone()
	c.History = append([]HistoryItem(nil), s.History...)
	c.Logs = append([]string(nil), s.Logs...)
	return &c
}

func clamp(v int) int {
	if v < MinHostility {
		return MinHostility
	}
	if v > MaxHostility {
		return MaxHostility
	}
	return v
}

// SetHostility sets an absolute hostility, clamped to [0,100].
func (s *NarrativeState) SetHostility(v int) {
	s.Hostility = clamp(v)
}

// AdjustHostility applies a delta, clamped to [0,100].
func (s *NarrativeState) AdjustHostility(delta int) {
	s.Hostility = clamp(s.Hostility + delta)
}

// DiscoverMood adds m to the archive and reports whether it was new.
func (s *NarrativeState) DiscoverMood(m mood.Mood) bool {
	return s.DiscoveredMoods.Add(m)
}

func (s *NarrativeState) DiscoverCheat(name string) bool {
	return s.DiscoveredCheats.Add(name)
}

func (s *NarrativeState) UnlockEnding(id string) bool {
	return s.UnlockedEndings.Add(id)
}

// AppendHistory records a calculation, evicting the oldest past the limit.
func (s *NarrativeState) AppendHistory(item HistoryItem) {
	s.History = append(s.History, item)
	s.trimHistory()
}

func (s *NarrativeState) trimHistory() {
	if over := len(s.History) - HistoryLimit; over > 0 {
		s.History = append([]HistoryItem(nil), s.History[over:]...)
	}
}

// AddLog appends an upper-cased system log line, keeping the last LogLimit.
func (s *NarrativeState) AddLog(line string) {
	s.Logs = append(s.Logs, strings.ToUpper(line))
	if over := len(s.Logs) - LogLimit; over > 0 {
		s.Logs = append([]string(nil), s.Logs[over:]...)
	}
}

// Idle reports whether nothing is blocking ordinary input.
func (s *NarrativeState) Idle() bool {
	return !s.Transitioning && !s.EnteringFinale && !s.Booting && !s.Thinking
}

// View accessors used by the finale graph builder.

func (s *NarrativeState) GetCalculationsCount() int { return s.CalculationsCount }
func (s *NarrativeState) GetHostility() int         { return s.Hostility }
func (s *NarrativeState) GetDiscoveredCount() int   { return len(s.DiscoveredMoods) }
func (s *NarrativeState) HasMood(m mood.Mood) bool  { return s.DiscoveredMoods.Has(m) }
