package state

import (
	"encoding/json"
	"sort"

	"github.com/jwebster45206/resentcalc/pkg/mood"
)

// MoodSet is a set of moods. It persists as a JSON array.
type MoodSet map[mood.Mood]struct{}

func NewMoodSet(moods ...mood.Mood) MoodSet {
	s := make(MoodSet, len(moods))
	for _, m := range moods {
		s.Add(m)
	}
	return s
}

// Add inserts m and reports whether it was new. Unknown moods are ignored.
func (s MoodSet) Add(m mood.Mood) bool {
	if !m.Valid() {
		return false
	}
	if _, ok := s[m]; ok {
		return false
	}
	s[m] = struct{}{}
	return true
}

func (s MoodSet) Has(m mood.Mood) bool {
	_, ok := s[m]
	return ok
}

// List returns the members in archive order.
func (s MoodSet) List() []mood.Mood {
	out := make([]mood.Mood, 0, len(s))
	for _, m := range mood.All() {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s MoodSet) Clone() MoodSet {
	out := make(MoodSet, len(s))
	for m := range s {
		out[m] = struct{}{}
	}
	return out
}

func (s MoodSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON replaces the set and silently drops unknown moods.
func (s *MoodSet) UnmarshalJSON(data []byte) error {
	var list []mood.Mood
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewMoodSet(list...)
	return nil
}

// StringSet is a set of identifiers. It persists as a JSON array.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v and reports whether it was new.
func (s StringSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// List returns the members sorted.
func (s StringSet) List() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewStringSet(list...)
	return nil
}
