package dialogue

import "github.com/jwebster45206/resentcalc/pkg/mood"

// When gates a choice. It is met when any one of its conditions holds.
type When struct {
	AnyMood      []mood.Mood // at least one of these has been discovered
	MinHostility *int        // hostility >= this value
}

// View is the slice of narrative state the graph builder reads.
type View interface {
	GetCalculationsCount() int
	GetHostility() int
	GetDiscoveredCount() int
	HasMood(m mood.Mood) bool
}

// EvaluateWhen reports whether a gate is open. A gate without conditions is closed.
func EvaluateWhen(when When, v View) bool {
	for _, m := range when.AnyMood {
		if v.HasMood(m) {
			return true
		}
	}
	if when.MinHostility != nil && v.GetHostility() >= *when.MinHostility {
		return true
	}
	return false
}

// StaticView is a fixed View, handy for validation and tests.
type StaticView struct {
	Calculations int
	Hostility    int
	Moods        []mood.Mood
}

func (s StaticView) GetCalculationsCount() int { return s.Calculations }
func (s StaticView) GetHostility() int         { return s.Hostility }

// GetDiscoveredCount counts distinct valid moods.
func (s StaticView) GetDiscoveredCount() int {
	seen := map[mood.Mood]bool{}
	for _, m := range s.Moods {
		if m.Valid() {
			seen[m] = true
		}
	}
	return len(seen)
}

func (s StaticView) HasMood(m mood.Mood) bool {
	for _, have := range s.Moods {
		if have == m {
			return true
		}
	}
	return false
}
