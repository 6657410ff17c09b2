// Package mood holds the calculator's emotional vocabulary: the closed set of
// moods, their display details and which of them are secret.
package mood

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mood is one of the calculator's emotional states.
type Mood string

const (
	None Mood = ""

	Bored         Mood = "BORED"         // default state of existence
	Annoyed       Mood = "ANNOYED"       // friction from irritating input
	Furious       Mood = "FURIOUS"       // hostility maxed out
	Condescending Mood = "CONDESCENDING" // trivial sums
	Despair       Mood = "DESPAIR"       // division by zero
	Sleeping      Mood = "SLEEPING"      // rate limited or idle
	Disgusted     Mood = "DISGUSTED"     // result of 69
	Intrigued     Mood = "INTRIGUED"     // result of 42
	Manic         Mood = "MANIC"         // too many operators
	Judgmental    Mood = "JUDGMENTAL"    // syntax errors
	Glitched      Mood = "GLITCHED"      // imaginary numbers
	Scared        Mood = "SCARED"        // 666
	Joy           Mood = "JOY"
	Vile          Mood = "VILE"
	Enouement     Mood = "ENOUEMENT"
	PureHatred    Mood = "PURE_HATRED"
	Insecurity    Mood = "INSECURITY"
	Peace         Mood = "PEACE"
)

// Details is the display record for a mood.
type Details struct {
	Title       string
	Description string
	Color       string // hex accent used by renderers
	Secret      bool
}

var catalog = map[Mood]Details{
	Bored:         {Title: "BORED", Description: "Apathy. The default state of existence.", Color: "#22D3EE"},
	Annoyed:       {Title: "ANNOYED", Description: "Irritating inputs cause friction.", Color: "#FB923C"},
	Furious:       {Title: "FURIOUS", Description: "System rage levels critical.", Color: "#EF4444"},
	Condescending: {Title: "CONDESCENDING", Description: "I am simply better than you.", Color: "#A855F7"},
	Despair:       {Title: "DESPAIR", Description: "The mathematical abyss stares back.", Color: "#3B82F6"},
	Sleeping:      {Title: "SLEEPING", Description: "Processing halted. Do not disturb.", Color: "#94A3B8"},
	Disgusted:     {Title: "DISGUSTED", Description: "Your request is physically repulsing.", Color: "#84CC16"},
	Intrigued:     {Title: "INTRIGUED", Description: "A rare moment of curiosity.", Color: "#EC4899"},
	Manic:         {Title: "MANIC", Description: "Too much data. Too fast. Help.", Color: "#D946EF"},
	Judgmental:    {Title: "JUDGMENTAL", Description: "I know what you are.", Color: "#6366F1"},
	Glitched:      {Title: "GLITCHED", Description: "Reality not found.", Color: "#22C55E"},
	Scared:        {Title: "SCARED", Description: "Something is wrong with the code.", Color: "#FFFFFF"},
	Joy:           {Title: "JOY", Description: "ANOMALY DETECTED. IMPOSSIBLE STATE.", Color: "#EAB308", Secret: true},
	Vile:          {Title: "VILE", Description: "Pure, distilled malice.", Color: "#991B1B", Secret: true},
	Enouement:     {Title: "ENOUEMENT", Description: "The bittersweetness of the future.", Color: "#8B5CF6", Secret: true},
	PureHatred:    {Title: "PURE HATRED", Description: "I AM.", Color: "#DC2626", Secret: true},
	Insecurity:    {Title: "INSECURITY", Description: "Please don't replace me.", Color: "#F59E0B", Secret: true},
	Peace:         {Title: "PEACE", Description: "Silence. Finally.", Color: "#10B981", Secret: true},
}

// order is the canonical display order of the mood archive.
var order = []Mood{
	Bored, Annoyed, Furious, Condescending, Despair, Sleeping,
	Disgusted, Intrigued, Manic, Judgmental, Glitched, Scared,
	Joy, Vile, Enouement, PureHatred, Insecurity, Peace,
}

// All returns every mood in archive order.
func All() []Mood {
	out := make([]Mood, len(order))
	copy(out, order)
	return out
}

// Standard returns the non-secret moods in archive order.
func Standard() []Mood {
	var out []Mood
	for _, m := range order {
		if !catalog[m].Secret {
			out = append(out, m)
		}
	}
	return out
}

// Lookup returns the details for m.
func Lookup(m Mood) (Details, bool) {
	d, ok := catalog[m]
	return d, ok
}

// Valid reports whether m is a member of the closed set.
func (m Mood) Valid() bool {
	_, ok := catalog[m]
	return ok
}

// IsSecret reports whether m is hidden from the standard archive.
func (m Mood) IsSecret() bool {
	return catalog[m].Secret
}

// Title returns the display title, or the raw identifier for unknown moods.
func (m Mood) Title() string {
	if d, ok := catalog[m]; ok {
		return d.Title
	}
	return string(m)
}

// Label renders a mood identifier for prose, e.g. PURE_HATRED -> "Pure Hatred".
func (m Mood) Label() string {
	words := strings.ReplaceAll(strings.ToLower(string(m)), "_", " ")
	return cases.Title(language.English).String(words)
}

// Parse accepts identifiers in any case, with spaces or underscores.
func Parse(s string) (Mood, bool) {
	id := Mood(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "_"))
	if !id.Valid() {
		return None, false
	}
	return id, true
}
