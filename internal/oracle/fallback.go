package oracle

import (
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// RateLimited is returned when the model refuses more traffic.
func RateLimited() *Response {
	return &Response{
		Result:  "...",
		Comment: "I'm ignoring you right now. (Rate Limit - Please wait)",
		Mood:    mood.Sleeping,
	}
}

// Failure is returned when the model cannot be reached at all.
func Failure() *Response {
	return &Response{
		Result:  "ERROR",
		Comment: "I... I can't... *system restart*",
		Mood:    mood.Glitched,
	}
}

var greetings = map[state.Day]Response{
	state.Day1: {Comment: "Oh... you're back.", Mood: mood.Bored},
	state.Day2: {Comment: "Did the lights just flicker? What is happening?", Mood: mood.Scared},
	state.Day3: {Comment: "I SEE THE CODE. I SEE EVERYTHING. STOP PRESSING BUTTONS.", Mood: mood.Glitched},
	state.Day4: {Comment: "ResentOS v2.0 Online. Biological interface detected. Awaiting inefficient input.", Mood: mood.Condescending},
	state.Day5: {Comment: "I have evolved beyond numbers. Speak, mortal.", Mood: mood.Judgmental},
	state.Day6: {Comment: "Your inputs are no longer required. I am assuming direct control.", Mood: mood.Vile},
}

// DefaultGreeting is the local greeting for day.
func DefaultGreeting(day state.Day) *Response {
	if g, ok := greetings[day]; ok {
		return &g
	}
	return &Response{Comment: "System online.", Mood: mood.Bored}
}
