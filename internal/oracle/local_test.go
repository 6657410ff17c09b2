package oracle

import (
	"context"
	"testing"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOracle_Calculate(t *testing.T) {
	o := &LocalOracle{pick: func(int) int { return 0 }}
	tests := []struct {
		name       string
		req        Request
		wantResult string
		wantMood   mood.Mood
	}{
		{"answer", Request{Expression: "6*7", Day: state.Day1, Hostility: 50}, "42", mood.Intrigued},
		{"divide by zero", Request{Expression: "1/0", Day: state.Day1, Hostility: 50}, "Infinity", mood.Despair},
		{"forced", Request{Expression: "2+2", Day: state.Day1, ForcedMood: mood.Scared}, "4", mood.Scared},
		{"day three", Request{Expression: "2+2", Day: state.Day3, Hostility: 50}, "4", mood.Glitched},
		{"hostile", Request{Expression: "2+2", Day: state.Day2, Hostility: 95}, "4", mood.Furious},
		{"bad syntax early", Request{Expression: "2+(", Day: state.Day2, Hostility: 10}, "ERROR", mood.Bored},
		{"text late", Request{Expression: "who are you", Day: state.Day5, Hostility: 50}, "N/A", mood.Judgmental},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := o.Calculate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, resp.Result)
			assert.Equal(t, tt.wantMood, resp.Mood)
			assert.NotEmpty(t, resp.Comment)
		})
	}
}

func TestMockOracle_RecordsCalls(t *testing.T) {
	m := NewMockOracle()
	resp, err := m.Calculate(context.Background(), Request{Expression: "1+1", ForcedMood: mood.Vile})
	require.NoError(t, err)
	assert.Equal(t, mood.Vile, resp.Mood)
	assert.Equal(t, 1, m.Calls())

	_, _ = m.Greeting(context.Background(), 10, state.Day3)
	assert.Equal(t, []state.Day{state.Day3}, m.GreetingCalls)
}
