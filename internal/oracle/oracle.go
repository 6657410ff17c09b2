// Package oracle produces the calculator's answers and commentary, either
// from Gemini or from a local offline personality.
package oracle

import (
	"context"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// Request is one calculation handed to an Oracle.
type Request struct {
	Expression string
	Hostility  int
	Day        state.Day
	ForcedMood mood.Mood // mood.None when nothing is forced
}

// Response is the calculator's answer.
type Response struct {
	Result  string    `json:"result"`
	Comment string    `json:"comment"`
	Mood    mood.Mood `json:"mood"`
}

// Oracle answers calculations and greets the player on boot.
type Oracle interface {
	// Calculate evaluates an expression (or, late in the week, a question)
	Calculate(ctx context.Context, req Request) (*Response, error)

	// Greeting produces the line shown after boot
	Greeting(ctx context.Context, hostility int, day state.Day) (*Response, error)
}

// enforce pins a forced mood and repairs an unknown one.
func enforce(resp *Response, forced mood.Mood) *Response {
	if forced != mood.None {
		resp.Mood = forced
	}
	if !resp.Mood.Valid() {
		resp.Mood = mood.Bored
	}
	return resp
}
