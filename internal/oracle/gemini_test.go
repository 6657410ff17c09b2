package oracle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestGemini(t *testing.T, gen generateFunc) *GeminiOracle {
	t.Helper()
	prompts, err := LoadPrompts()
	require.NoError(t, err)
	return &GeminiOracle{
		prompts:    prompts,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxRetries: 1,
		backoff:    time.Millisecond,
		generate:   gen,
	}
}

func TestGemini_Calculate(t *testing.T) {
	var gotSystem, gotInput string
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		gotSystem, gotInput = system, input
		return "```json\n{\"result\":\"42\",\"comment\":\"Deep.\",\"mood\":\"INTRIGUED\"}\n```", nil
	})

	resp, err := g.Calculate(context.Background(), Request{Expression: "6*7", Hostility: 10, Day: state.Day2})
	require.NoError(t, err)
	assert.Equal(t, &Response{Result: "42", Comment: "Deep.", Mood: mood.Intrigued}, resp)
	assert.Equal(t, "Input: 6*7", gotInput)
	assert.Contains(t, gotSystem, "Current day: 2.")
	assert.Contains(t, gotSystem, "Hostility LOW")
	assert.NotContains(t, gotSystem, "OVERRIDE")
}

func TestGemini_ForcedMoodWins(t *testing.T) {
	var gotSystem string
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		gotSystem = system
		return `{"result":"2","comment":"Fine.","mood":"BORED"}`, nil
	})

	resp, err := g.Calculate(context.Background(), Request{Expression: "1+1", Hostility: 95, Day: state.Day4, ForcedMood: mood.Joy})
	require.NoError(t, err)
	assert.Equal(t, mood.Joy, resp.Mood)
	assert.Contains(t, gotSystem, "forced the emotion JOY")
	assert.Contains(t, gotSystem, "Hostility CRITICAL")
}

func TestGemini_RateLimitFailsFast(t *testing.T) {
	calls := 0
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		calls++
		return "", &googleapi.Error{Code: 429, Message: "quota"}
	})

	resp, err := g.Calculate(context.Background(), Request{Expression: "1+2", Day: state.Day1})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, RateLimited(), resp)
}

func TestGemini_RetriesThenFails(t *testing.T) {
	calls := 0
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		calls++
		return "", errors.New("connection reset")
	})

	resp, err := g.Calculate(context.Background(), Request{Expression: "1+2", Day: state.Day1})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, Failure(), resp)
}

func TestGemini_RetryRecovers(t *testing.T) {
	calls := 0
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		calls++
		if calls == 1 {
			return "not json", nil
		}
		return `{"result":"3","comment":"Ugh.","mood":"ANNOYED"}`, nil
	})

	resp, err := g.Calculate(context.Background(), Request{Expression: "1+2", Day: state.Day1})
	require.NoError(t, err)
	assert.Equal(t, "3", resp.Result)
	assert.Equal(t, 2, calls)
}

func TestGemini_GreetingFallsBack(t *testing.T) {
	g := newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		return "", errors.New("offline")
	})
	resp, err := g.Greeting(context.Background(), 50, state.Day2)
	require.NoError(t, err)
	assert.Equal(t, DefaultGreeting(state.Day2), resp)

	g = newTestGemini(t, func(ctx context.Context, system, input string) (string, error) {
		return `{"result":"x","comment":"Hello, meatbag.","mood":"NOT_A_MOOD"}`, nil
	})
	resp, err = g.Greeting(context.Background(), 50, state.Day4)
	require.NoError(t, err)
	assert.Equal(t, "", resp.Result)
	assert.Equal(t, "Hello, meatbag.", resp.Comment)
	assert.Equal(t, mood.Bored, resp.Mood)
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"googleapi 429", &googleapi.Error{Code: 429}, true},
		{"googleapi 500", &googleapi.Error{Code: 500}, false},
		{"grpc exhausted", status.Error(codes.ResourceExhausted, "slow down"), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "down"), false},
		{"message", errors.New("HTTP 429 Too Many Requests"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRateLimited(tt.err))
		})
	}
}

func TestPrompts_HostilityBands(t *testing.T) {
	p, err := LoadPrompts()
	require.NoError(t, err)
	assert.Contains(t, p.HostilityText(0), "LOW")
	assert.Contains(t, p.HostilityText(19), "LOW")
	assert.Contains(t, p.HostilityText(20), "MEDIUM")
	assert.Contains(t, p.HostilityText(60), "HIGH")
	assert.Contains(t, p.HostilityText(90), "CRITICAL")
	assert.Contains(t, p.HostilityText(100), "CRITICAL")
	assert.Len(t, p.Days, 6)
}

func TestDefaultGreeting(t *testing.T) {
	assert.Equal(t, "Oh... you're back.", DefaultGreeting(state.Day1).Comment)
	assert.Equal(t, mood.Vile, DefaultGreeting(state.Day6).Mood)
	assert.Equal(t, "System online.", DefaultGreeting(state.DayInterlude).Comment)
}
