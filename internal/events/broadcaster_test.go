package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

func setup(t *testing.T) (*Broadcaster, *redis.Client, uuid.UUID) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	session := uuid.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	b := NewBroadcaster(client, session, logger)
	b.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return b, client, session
}

func receive(t *testing.T, sub *redis.PubSub) Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	return event
}

func TestBroadcaster_Publish(t *testing.T) {
	b, client, session := setup(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, Channel(session))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	tests := []struct {
		name    string
		publish func() error
		want    Event
	}{
		{
			name:    "day landed",
			publish: func() error { return b.PublishDayLanded(ctx, state.DayInterlude) },
			want:    Event{Type: EventTypeDayLanded, Day: "3.5"},
		},
		{
			name:    "mood discovered",
			publish: func() error { return b.PublishMoodDiscovered(ctx, state.Day2, mood.Scared) },
			want:    Event{Type: EventTypeMoodDiscovered, Day: "2", Mood: mood.Scared},
		},
		{
			name:    "ending unlocked",
			publish: func() error { return b.PublishEndingUnlocked(ctx, state.Day6, "peace") },
			want:    Event{Type: EventTypeEndingUnlocked, Day: "6", Ending: "peace"},
		},
		{
			name:    "reboot",
			publish: func() error { return b.PublishReboot(ctx, state.Day1) },
			want:    Event{Type: EventTypeSessionRebooted, Day: "1"},
		},
		{
			name:    "wipe",
			publish: func() error { return b.PublishWipe(ctx, state.Day1) },
			want:    Event{Type: EventTypeSessionWiped, Day: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.publish())
			got := receive(t, sub)

			tt.want.SessionID = session.String()
			tt.want.At = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcaster_Nil(t *testing.T) {
	var b *Broadcaster
	assert.NoError(t, b.PublishDayLanded(context.Background(), state.Day1))
}

func TestBroadcaster_PublishError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	b := NewBroadcaster(client, uuid.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	mr.Close()
	err := b.PublishWipe(context.Background(), state.Day1)
	assert.ErrorContains(t, err, "failed to publish event")
}
