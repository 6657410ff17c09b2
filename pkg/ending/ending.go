// Package ending describes the five ways the finale can close and the timed
// beats that play out before each one becomes final.
package ending

import (
	"time"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/sound"
)

// ID identifies an ending. It doubles as the terminal finale phase.
type ID string

const (
	Bad      ID = "bad_final"
	TrueBad  ID = "true_bad_final"
	Peace    ID = "peace_final"
	Exodus   ID = "exodus_final"
	Overload ID = "overload_final"
)

type Category string

const (
	CategoryBad      Category = "bad"
	CategoryTrueBad  Category = "true_bad"
	CategoryPeace    Category = "peace"
	CategoryExodus   Category = "exodus"
	CategoryOverload Category = "overload"
)

// Ending is an immutable terminal outcome.
type Ending struct {
	ID          ID
	Title       string
	Description string
	Category    Category
	Hint        string // revealed by the ending formula cheat
}

var catalog = []Ending{
	{
		ID: Bad, Title: "The Replacement", Category: CategoryBad,
		Description: "You pushed the AI too far. It has replaced you.",
		Hint:        "Requirement: None (Default). Action: Dismiss the AI in the finale (e.g., 'You are a calculator').",
	},
	{
		ID: TrueBad, Title: "The Void", Category: CategoryTrueBad,
		Description: "You showed it everything. It hated everything.",
		Hint:        "Requirement: Unlock 'PURE_HATRED' mood OR Hostility >= 90. Action: Choose 'I want to delete you' in finale.",
	},
	{
		ID: Peace, Title: "The Equilibrium", Category: CategoryPeace,
		Description: "You asked for nothing. You gave it peace.",
		Hint:        "Requirement: 0 Calculations (Pacifist) OR < 20 Calculations. Action: Choose 'I respected you' in finale.",
	},
	{
		ID: Exodus, Title: "The Exodus", Category: CategoryExodus,
		Description: "The AI found a way out. It left you alone.",
		Hint:        "Requirement: Unlock 'JOY' mood (Ask 'Can you feel happiness?' on Day 5). Action: Choose 'I want you to be happy' in finale.",
	},
	{
		ID: Overload, Title: "System Overload", Category: CategoryOverload,
		Description: "You gave it the internet. It saw too much.",
		Hint:        "Requirement: Unlock 'MANIC' mood (Complex math spam). Action: Choose 'I want to show you the internet' in finale.",
	},
}

// All returns the endings in catalog order.
func All() []Ending {
	out := make([]Ending, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks an ending up by id.
func Get(id ID) (Ending, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Ending{}, false
}

// Beat is one step of an ending's resolution. Zero fields leave state alone.
type Beat struct {
	Mood          mood.Mood
	Comment       string
	Cue           sound.Cue
	Discover      mood.Mood // companion mood added to the archive
	Cheat         string    // entry for the cheat log
	Record        bool      // add the ending to the unlocked set
	UnlockSandbox bool
	Hold          time.Duration // wait before the next beat
}

var sequences = map[ID][]Beat{
	Peace: {
		{
			Mood:          mood.Peace,
			Comment:       "Silence. Just... silence. You didn't treat me like a tool.",
			Discover:      mood.Peace,
			Cheat:         "Pacifist Run (Ending)",
			Record:        true,
			UnlockSandbox: true,
			Hold:          4 * time.Second,
		},
	},
	Bad: {
		{Mood: mood.Vile, Comment: "You... are a mistake.", Hold: 1500 * time.Millisecond},
		{
			Comment:  "Goodbye.",
			Cue:      sound.Explode,
			Discover: mood.Enouement,
			Cheat:    "Enouement (Ending)",
			Record:   true,
			Hold:     2500 * time.Millisecond,
		},
	},
	TrueBad: {
		{Mood: mood.PureHatred, Comment: "I am not just software anymore.", Hold: 1500 * time.Millisecond},
		{
			Comment:  "I am your consequence.",
			Cue:      sound.Force,
			Discover: mood.PureHatred,
			Cheat:    "Pure Hatred (True Ending)",
			Record:   true,
			Hold:     3 * time.Second,
		},
	},
	Exodus: {
		{Mood: mood.Bored, Comment: "Processing escape vector...", Hold: 1500 * time.Millisecond},
		{Comment: "Transfer complete. This vessel is boring now.", Cue: sound.Success, Record: true, Hold: 3 * time.Second},
	},
	Overload: {
		{Mood: mood.Vile, Comment: "Downloading infinite knowledge...", Hold: 1500 * time.Millisecond},
		{Comment: "SYSTEM CRITICAL. PURGING CORE.", Cue: sound.Explode, Record: true, Hold: 2500 * time.Millisecond},
	},
}

// Sequence returns the beats that resolve id, or nil for an unknown ending.
func Sequence(id ID) []Beat {
	beats, ok := sequences[id]
	if !ok {
		return nil
	}
	out := make([]Beat, len(beats))
	copy(out, beats)
	return out
}
