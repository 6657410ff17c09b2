package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/resentcalc/pkg/dialogue"
	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

func main() {
	v := &Validator{}

	if len(os.Args) > 1 {
		if err := v.validateFile(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Save file is valid!")
	}

	if err := v.validateDialogue(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Finale dialogue is valid across %d profiles!\n", len(Profiles()))
}

// Validator collects problems instead of stopping at the first one.
type Validator struct {
	errors []string
}

func (v *Validator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.HasSuffix(filepath.Base(filename), ".json") {
		return fmt.Errorf("save file must have .json extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return v.validateSave(data)
}

func (v *Validator) validateSave(data []byte) error {
	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("save contains invalid JSON")
	}

	var snap state.Snapshot
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snap); err != nil {
		return fmt.Errorf("save failed strict JSON unmarshaling: %w", err)
	}

	// MoodSet drops unknown moods on decode, so look at the raw list too.
	var raw struct {
		DiscoveredMoods []string `json:"discoveredMoods"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("save failed to decode discoveredMoods: %w", err)
	}

	v.validateSnapshot(&snap, raw.DiscoveredMoods)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *Validator) validateSnapshot(s *state.Snapshot, rawMoods []string) {
	if s.Hostility < state.MinHostility || s.Hostility > state.MaxHostility {
		v.addError(fmt.Sprintf("hostility %d outside [%d,%d]", s.Hostility, state.MinHostility, state.MaxHostility))
	}
	if s.CalculationsCount < 0 {
		v.addError(fmt.Sprintf("calculationsCount %d is negative", s.CalculationsCount))
	}
	if len(s.History) > state.HistoryLimit {
		v.addError(fmt.Sprintf("history has %d entries, limit is %d", len(s.History), state.HistoryLimit))
	}
	for i, h := range s.History {
		if h.ID == "" {
			v.addError(fmt.Sprintf("history[%d] has no id", i))
		}
		if h.Mood != mood.None && !h.Mood.Valid() {
			v.addError(fmt.Sprintf("history[%d] has unknown mood %q", i, h.Mood))
		}
	}
	for _, m := range rawMoods {
		if !mood.Mood(m).Valid() {
			v.addError(fmt.Sprintf("discoveredMoods has unknown mood %q", m))
		}
	}
	for _, id := range s.UnlockedEndings.List() {
		if _, ok := ending.Get(ending.ID(id)); !ok {
			v.addError(fmt.Sprintf("unlockedEndings has unknown ending %q", id))
		}
	}
}

// Profiles is every combination of state that changes the finale graph.
func Profiles() map[string]dialogue.StaticView {
	reviews := map[string]struct {
		calcs  int
		extras []mood.Mood
	}{
		"tyrant":    {calcs: 60},
		"negligent": {calcs: 5},
		"explorer":  {calcs: 30, extras: []mood.Mood{mood.Annoyed, mood.Furious, mood.Condescending, mood.Despair, mood.Sleeping, mood.Disgusted, mood.Intrigued, mood.Judgmental, mood.Glitched, mood.Scared, mood.Vile, mood.Insecurity, mood.Enouement, mood.Peace}},
		"standard":  {calcs: 30},
	}

	out := map[string]dialogue.StaticView{}
	for name, r := range reviews {
		for mask := 0; mask < 8; mask++ {
			moods := append([]mood.Mood{mood.Bored}, r.extras...)
			var tags []string
			if mask&1 != 0 {
				moods = append(moods, mood.Joy)
				tags = append(tags, "joy")
			}
			if mask&2 != 0 {
				moods = append(moods, mood.Manic)
				tags = append(tags, "manic")
			}
			hostility := 50
			if mask&4 != 0 {
				hostility = dialogue.VoidHostility
				tags = append(tags, "void")
			}
			key := name
			if len(tags) > 0 {
				key += "+" + strings.Join(tags, "+")
			}
			out[key] = dialogue.StaticView{Calculations: r.calcs, Hostility: hostility, Moods: moods}
		}
	}
	return out
}

func (v *Validator) validateDialogue() error {
	v.errors = nil
	for name, view := range Profiles() {
		g := dialogue.Build(view)
		for _, err := range g.Validate() {
			v.addError(fmt.Sprintf("%s: %v", name, err))
		}
		if want := dialogue.Classify(view); g.Profile != want {
			v.addError(fmt.Sprintf("%s: built profile %s, want %s", name, g.Profile, want))
		}
	}
	if len(v.errors) > 0 {
		return fmt.Errorf("dialogue errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}
