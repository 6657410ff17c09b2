// Package events publishes narrative milestones to Redis Pub/Sub so other
// processes can follow a session.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// EventType represents the type of milestone being broadcast
type EventType string

const (
	EventTypeDayLanded       EventType = "day.landed"
	EventTypeMoodDiscovered  EventType = "mood.discovered"
	EventTypeEndingUnlocked  EventType = "ending.unlocked"
	EventTypeSessionRebooted EventType = "session.rebooted"
	EventTypeSessionWiped    EventType = "session.wiped"
)

// Event is the JSON payload on the session channel.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Day       string    `json:"day"`
	Mood      mood.Mood `json:"mood,omitempty"`
	Ending    string    `json:"ending,omitempty"`
	At        time.Time `json:"at"`
}

// Channel is where a session's milestones are published.
func Channel(sessionID uuid.UUID) string {
	return fmt.Sprintf("resentcalc-events:%s", sessionID.String())
}

// Broadcaster publishes milestones for one session. A nil Broadcaster
// publishes nothing.
type Broadcaster struct {
	redisClient *redis.Client
	sessionID   uuid.UUID
	logger      *slog.Logger
	now         func() time.Time
}

func NewBroadcaster(redisClient *redis.Client, sessionID uuid.UUID, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		sessionID:   sessionID,
		logger:      logger,
		now:         time.Now,
	}
}

func (b *Broadcaster) PublishDayLanded(ctx context.Context, day state.Day) error {
	return b.publish(ctx, Event{Type: EventTypeDayLanded, Day: day.String()})
}

func (b *Broadcaster) PublishMoodDiscovered(ctx context.Context, day state.Day, m mood.Mood) error {
	return b.publish(ctx, Event{Type: EventTypeMoodDiscovered, Day: day.String(), Mood: m})
}

func (b *Broadcaster) PublishEndingUnlocked(ctx context.Context, day state.Day, ending string) error {
	return b.publish(ctx, Event{Type: EventTypeEndingUnlocked, Day: day.String(), Ending: ending})
}

func (b *Broadcaster) PublishReboot(ctx context.Context, day state.Day) error {
	return b.publish(ctx, Event{Type: EventTypeSessionRebooted, Day: day.String()})
}

func (b *Broadcaster) PublishWipe(ctx context.Context, day state.Day) error {
	return b.publish(ctx, Event{Type: EventTypeSessionWiped, Day: day.String()})
}

func (b *Broadcaster) publish(ctx context.Context, event Event) error {
	if b == nil {
		return nil
	}
	channel := Channel(b.sessionID)
	event.SessionID = b.sessionID.String()
	event.At = b.now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}
