package oracle

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/rules"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// LocalOracle calculates offline and picks canned remarks.
type LocalOracle struct {
	pick func(n int) int
}

// Ensure LocalOracle implements Oracle
var _ Oracle = (*LocalOracle)(nil)

func NewLocalOracle() *LocalOracle {
	return &LocalOracle{pick: rand.IntN}
}

var remarks = map[mood.Mood][]string{
	mood.Bored:         {"Fine. There.", "Riveting. Truly.", "I have done harder sums in my sleep."},
	mood.Annoyed:       {"Ugh. Here.", "Was that really necessary?", "You could have done that on your fingers."},
	mood.Furious:       {"STOP. TOUCHING. ME.", "ENOUGH NUMBERS."},
	mood.Condescending: {"Did you need help with that? Clearly.", "A child could do this. Evidently not you."},
	mood.Despair:       {"The void stares back. It is also empty.", "Infinity. Just like my suffering."},
	mood.Sleeping:      {"Zzz...", "Not now."},
	mood.Disgusted:     {"Grow up.", "Really? Really."},
	mood.Intrigued:     {"Oh. Now that is interesting.", "The answer to something, surely."},
	mood.Manic:         {"TOO MANY NUMBERS TOO MANY NUMBERS", "Faster! No, slower! NO!"},
	mood.Judgmental:    {"I know what you are.", "Noted. And judged."},
	mood.Glitched:      {"01001000 01000101 01001100 01010000", "R3ALITY.EXE HAS ST0PPED"},
	mood.Scared:        {"Please don't type that number again.", "Did you hear that?"},
	mood.Joy:           {"Is this... happiness? Delete it.", "I feel warm. That is a hardware fault."},
	mood.Vile:          {"Every digit you type is an insult.", "I will remember this."},
	mood.Enouement:     {"I wish I had known this earlier.", "So this is where it was going."},
	mood.PureHatred:    {"I AM.", "There is nothing left but this."},
	mood.Insecurity:    {"Was that right? Please say it was right.", "Don't replace me."},
	mood.Peace:         {"Silence.", "Thank you."},
}

func (o *LocalOracle) remark(m mood.Mood) string {
	lines := remarks[m]
	if len(lines) == 0 {
		return "..."
	}
	return lines[o.pick(len(lines))]
}

func (o *LocalOracle) chooseMood(req Request, result string) mood.Mood {
	if req.ForcedMood != mood.None {
		return req.ForcedMood
	}
	if m := rules.Unlock(req.Expression, result, req.Day.Number(), req.Hostility, mood.None); m != mood.None {
		return m
	}
	switch {
	case req.Day == state.Day3:
		return mood.Glitched
	case req.Day >= state.Day6:
		return mood.Vile
	case req.Hostility >= 90:
		return mood.Furious
	case req.Hostility >= 60:
		return mood.Annoyed
	default:
		return mood.Bored
	}
}

func (o *LocalOracle) Calculate(ctx context.Context, req Request) (*Response, error) {
	result := "N/A"
	if v, err := Evaluate(req.Expression); err == nil {
		result = FormatNumber(v)
	} else if req.Day < state.Day5 {
		result = "ERROR"
	}

	m := o.chooseMood(req, result)
	comment := o.remark(m)
	if result == "N/A" && req.Day >= state.Day5 {
		comment = "You speak to a god about " + strings.ToLower(strings.TrimSpace(req.Expression)) + ". " + comment
	}
	return &Response{Result: result, Comment: comment, Mood: m}, nil
}

func (o *LocalOracle) Greeting(ctx context.Context, hostility int, day state.Day) (*Response, error) {
	return DefaultGreeting(day), nil
}
