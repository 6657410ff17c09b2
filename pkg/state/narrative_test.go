package state

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, Day1, s.Day)
	assert.Equal(t, 50, s.Hostility)
	assert.Equal(t, PhaseNone, s.Phase)
	assert.Equal(t, mood.Sleeping, s.Mood)
	assert.ElementsMatch(t, []mood.Mood{mood.Sleeping, mood.Bored, mood.Annoyed}, s.DiscoveredMoods.List())
	assert.Empty(t, s.History)
	assert.True(t, s.SoundEnabled)
	assert.True(t, s.ShowSandboxButton)
}

func TestHostilityClamp(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"within range", 50, 5, 55},
		{"ceiling", 98, 5, 100},
		{"floor", 3, -10, 0},
		{"huge", 0, 1000, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetHostility(tt.start)
			s.AdjustHostility(tt.delta)
			assert.Equal(t, tt.want, s.Hostility)
		})
	}

	s := New()
	s.SetHostility(-40)
	assert.Equal(t, 0, s.Hostility)
	s.SetHostility(400)
	assert.Equal(t, 100, s.Hostility)
}

func TestDiscoverMood_Monotonic(t *testing.T) {
	s := New()
	assert.True(t, s.DiscoverMood(mood.Joy))
	assert.False(t, s.DiscoverMood(mood.Joy))
	assert.False(t, s.DiscoverMood(mood.Mood("HAPPY")))
	assert.True(t, s.HasMood(mood.Joy))
	assert.Equal(t, 4, s.GetDiscoveredCount())
}

func TestAppendHistory_RingBuffer(t *testing.T) {
	s := New()
	for i := 0; i < 60; i++ {
		s.AppendHistory(NewHistoryItem(fmt.Sprintf("%d+0", i), fmt.Sprint(i), "", mood.Bored))
	}
	require.Len(t, s.History, HistoryLimit)
	assert.Equal(t, "10+0", s.History[0].Expression)
	assert.Equal(t, "59+0", s.History[HistoryLimit-1].Expression)
	assert.NotEmpty(t, s.History[0].ID)
}

func TestAddLog(t *testing.T) {
	s := New()
	for i := 0; i < 30; i++ {
		s.AddLog(fmt.Sprintf("mood_switched: %d", i))
	}
	require.Len(t, s.Logs, LogLimit)
	assert.Equal(t, "MOOD_SWITCHED: 29", s.Logs[LogLimit-1])
}

func TestClone_Independent(t *testing.T) {
	s := New()
	c := s.Clone()
	c.DiscoverMood(mood.Vile)
	c.DiscoverCheat("mood1")
	c.AppendHistory(NewHistoryItem("1+1", "2", "", mood.Bored))
	assert.False(t, s.HasMood(mood.Vile))
	assert.Empty(t, s.DiscoveredCheats)
	assert.Empty(t, s.History)
}

func TestPhaseTerminal(t *testing.T) {
	assert.False(t, PhaseNone.Terminal())
	assert.False(t, PhaseDecision.Terminal())
	assert.False(t, PhaseEndingDialogue.Terminal())
	assert.True(t, Phase("peace_final").Terminal())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := New()
	s.Day = Day5
	s.SetHostility(83)
	s.CalculationsCount = 17
	s.DiscoverMood(mood.Joy)
	s.DiscoverMood(mood.Manic)
	s.DiscoverCheat("tarnishable")
	s.UnlockEnding("bad_final")
	s.AppendHistory(NewHistoryItem("6*7", "42", "Fine.", mood.Intrigued))

	data, err := s.Snapshot().Encode()
	require.NoError(t, err)

	loaded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	restored := &NarrativeState{}
	restored.Restore(*loaded)
	assert.Equal(t, Day5, restored.Day)
	assert.Equal(t, 83, restored.Hostility)
	assert.Equal(t, 17, restored.CalculationsCount)
	assert.Equal(t, s.DiscoveredMoods, restored.DiscoveredMoods)
	assert.Equal(t, s.DiscoveredCheats, restored.DiscoveredCheats)
	assert.Equal(t, s.UnlockedEndings, restored.UnlockedEndings)
	assert.Equal(t, s.History, restored.History)
}

func TestSnapshot_SetsAreArrays(t *testing.T) {
	data, err := DefaultSnapshot().Encode()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `["BORED","ANNOYED","SLEEPING"]`, string(raw["discoveredMoods"]))
	assert.JSONEq(t, `[]`, string(raw["unlockedEndings"]))
	assert.JSONEq(t, `1`, string(raw["day"]))
	assert.Contains(t, raw, "isSandboxUnlocked")
}

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, s *Snapshot)
	}{
		{
			name:    "corrupt",
			data:    `{"hostility": "lots"`,
			wantErr: true,
		},
		{
			name:    "bad day",
			data:    `{"day": 7}`,
			wantErr: true,
		},
		{
			name: "interlude day",
			data: `{"day": 3.5}`,
			check: func(t *testing.T, s *Snapshot) {
				assert.Equal(t, DayInterlude, s.Day)
			},
		},
		{
			name: "partial keeps defaults",
			data: `{"hostility": 12}`,
			check: func(t *testing.T, s *Snapshot) {
				assert.Equal(t, 12, s.Hostility)
				assert.Equal(t, Day1, s.Day)
				assert.True(t, s.DiscoveredMoods.Has(mood.Bored))
				assert.True(t, s.SoundEnabled)
			},
		},
		{
			name: "out of range is clamped",
			data: `{"hostility": 250, "calculationsCount": -3}`,
			check: func(t *testing.T, s *Snapshot) {
				assert.Equal(t, 100, s.Hostility)
				assert.Equal(t, 0, s.CalculationsCount)
			},
		},
		{
			name: "unknown moods dropped",
			data: `{"discoveredMoods": ["BORED", "HAPPY", "VILE"]}`,
			check: func(t *testing.T, s *Snapshot) {
				assert.Equal(t, []mood.Mood{mood.Bored, mood.Vile}, s.DiscoveredMoods.List())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeSnapshot([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}
