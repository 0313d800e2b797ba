package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfare/models"
)

// SnapshotSink receives the plain-data {requirements, itinerary} record the
// engine emits after each successful generation. The host side owns durable
// persistence; the engine only publishes.
type SnapshotSink interface {
	Publish(ctx context.Context, snap models.Snapshot) error
}

// NopSink discards snapshots. Used when no persistence host is configured
// and in tests.
type NopSink struct{}

func (NopSink) Publish(ctx context.Context, snap models.Snapshot) error { return nil }

// RedisSink mirrors snapshots into Redis under trip:snapshot:<convid> for
// the host to collect.
type RedisSink struct {
	conn *redis.Client
	ttl  time.Duration
}

func NewRedisSink(conn *redis.Client) *RedisSink {
	return &RedisSink{conn: conn, ttl: 7 * 24 * time.Hour}
}

func (s *RedisSink) Publish(ctx context.Context, snap models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	key := "trip:snapshot:" + snap.ConversationID
	if err := s.conn.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot %s: %w", key, err)
	}
	return nil
}
