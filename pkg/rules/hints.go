package rules

import "github.com/jwebster45206/resentcalc/pkg/mood"

// Hint describes how a mood is reached, revealed by the formula cheat.
type Hint struct {
	Mood mood.Mood
	Text string
	Day  int // earliest day the hint is meaningful
}

var MoodHints = []Hint{
	{mood.Annoyed, "Input: '1!+2!+3!' (Hostility < 20)", 1},
	{mood.Despair, "Divide by Zero", 1},
	{mood.Disgusted, "Result equals 69", 1},
	{mood.Intrigued, "Result equals 42", 1},
	{mood.Scared, "Input: '666'", 2},
	{mood.Manic, "Input contains more than 3 '^' symbols", 3},
	{mood.Glitched, "Square root of negative number", 3},
	{mood.Furious, "Reach MAX Hostility (100)", 1},
	{mood.Condescending, "Calculate '1+1' (Too simple)", 1},
	{mood.Judgmental, "Syntax Error (e.g. '++')", 1},
	{mood.Sleeping, "Idle for 15 seconds", 1},
	{mood.Bored, "Press AC (Clear)", 1},
}
