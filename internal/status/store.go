package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTTL = 24 * time.Hour
	keyPrefix  = "dashboard::provenance::"
)

var ErrNotFound = errors.New("no dashboard load recorded")

// Entry describes the last dashboard load of a user.
type Entry struct {
	Provenance dashboard.Provenance `json:"provenance"`
	Cause      string               `json:"cause,omitempty"`
	At         time.Time            `json:"at"`
}

// Store keeps the provenance of each user's last dashboard load in redis.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
	// injectable for tests
	now func() time.Time
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
		now:         time.Now,
	}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Record implements dashboard.Observer.
func (s *Store) Record(ctx context.Context, userID string, result *dashboard.Result) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statusStore.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if userID == "" {
		return nil
	}

	entry := Entry{
		Provenance: result.Provenance,
		At:         s.now().UTC().Truncate(time.Second),
	}
	if result.Cause != nil {
		entry.Cause = result.Cause.Error()
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal status entry: %w", err)
	}

	if err := s.redisClient.Set(ctx, key(userID), string(entryJson), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set status: %w", err)
	}

	return nil
}

func (s *Store) Last(ctx context.Context, userID string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statusStore.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	val, err := s.redisClient.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get status: %w", err)
	}

	entry := &Entry{}
	if err := json.Unmarshal([]byte(val), entry); err != nil {
		return nil, fmt.Errorf("unmarshal status entry: %w", err)
	}

	return entry, nil
}
