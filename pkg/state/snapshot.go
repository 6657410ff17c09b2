package state

import (
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/resentcalc/pkg/mood"
)

// Snapshot is the persisted form of a NarrativeState.
type Snapshot struct {
	Hostility         int           `json:"hostility"`
	History           []HistoryItem `json:"history"`
	Day               Day           `json:"day"`
	DiscoveredMoods   MoodSet       `json:"discoveredMoods"`
	DiscoveredCheats  StringSet     `json:"discoveredCheats"`
	UnlockedEndings   StringSet     `json:"unlockedEndings"`
	SoundEnabled      bool          `json:"soundEnabled"`
	CalculationsCount int           `json:"calculationsCount"`
	SandboxUnlocked   bool          `json:"isSandboxUnlocked"`
	ShowSandboxButton bool          `json:"showSandboxButton"`
}

// DefaultSnapshot is used when nothing usable is stored.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Hostility:         DefaultHostility,
		History:           []HistoryItem{},
		Day:               Day1,
		DiscoveredMoods:   NewMoodSet(mood.Sleeping, mood.Bored, mood.Annoyed),
		DiscoveredCheats:  NewStringSet(),
		UnlockedEndings:   NewStringSet(),
		SoundEnabled:      true,
		ShowSandboxButton: true,
	}
}

// DecodeSnapshot parses stored bytes. Keys missing from data keep their
// defaults; out-of-range values are pulled back into range.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	snap.normalize()
	return &snap, nil
}

// Encode renders the snapshot as stored JSON.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func (s *Snapshot) normalize() {
	s.Hostility = clamp(s.Hostility)
	if s.CalculationsCount < 0 {
		s.CalculationsCount = 0
	}
	if s.History == nil {
		s.History = []HistoryItem{}
	}
	if over := len(s.History) - HistoryLimit; over > 0 {
		s.History = s.History[over:]
	}
	if s.DiscoveredMoods == nil {
		s.DiscoveredMoods = NewMoodSet()
	}
	if s.DiscoveredCheats == nil {
		s.DiscoveredCheats = NewStringSet()
	}
	if s.UnlockedEndings == nil {
		s.UnlockedEndings = NewStringSet()
	}
}
