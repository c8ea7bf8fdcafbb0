package status

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2beens/fitcoach/internal/dashboard"
	testingpkg "github.com/2beens/fitcoach/pkg/testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

var testNow = time.Date(2026, 10, 17, 9, 30, 15, 0, time.UTC)

func TestStore_Record(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	store := NewStore(rdb, DefaultTTL)
	store.now = func() time.Time { return testNow }

	expectedJson, err := json.Marshal(Entry{
		Provenance: dashboard.ProvenanceSynthetic,
		Cause:      "analytics backend status 503: down",
		At:         testNow,
	})
	require.NoError(t, err)

	mock.ExpectSet("dashboard::provenance::42", string(expectedJson), DefaultTTL).SetVal("OK")

	err = store.Record(context.Background(), "42", &dashboard.Result{
		Provenance: dashboard.ProvenanceSynthetic,
		Cause:      errors.New("analytics backend status 503: down"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Record_RedisError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	store := NewStore(rdb, time.Minute)
	store.now = func() time.Time { return testNow }

	expectedJson, err := json.Marshal(Entry{Provenance: dashboard.ProvenanceLive, At: testNow})
	require.NoError(t, err)
	mock.ExpectSet("dashboard::provenance::42", string(expectedJson), time.Minute).SetErr(errors.New("redis down"))

	err = store.Record(context.Background(), "42", &dashboard.Result{Provenance: dashboard.ProvenanceLive})
	assert.EqualError(t, err, "redis set status: redis down")
}

func TestStore_Record_Anonymous(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	store := NewStore(rdb, DefaultTTL)
	require.NoError(t, store.Record(context.Background(), "", &dashboard.Result{Provenance: dashboard.ProvenanceSynthetic}))
	// no redis command expected
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Last_Mock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()
	store := NewStore(rdb, DefaultTTL)

	mock.ExpectGet("dashboard::provenance::1").RedisNil()
	_, err := store.Last(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectGet("dashboard::provenance::2").SetVal("{not json")
	_, err = store.Last(context.Background(), "2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	mock.ExpectGet("dashboard::provenance::3").SetErr(errors.New("conn reset"))
	_, err = store.Last(context.Background(), "3")
	assert.EqualError(t, err, "redis get status: conn reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RecordAndLast(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)

	store := NewStore(rdb, DefaultTTL)
	store.now = func() time.Time { return testNow.Add(500 * time.Millisecond) }

	userID := "status-test-user"
	t.Cleanup(func() {
		rdb.Del(context.Background(), key(userID))
	})

	_, err := store.Last(ctx, userID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Record(ctx, userID, &dashboard.Result{Provenance: dashboard.ProvenanceLive}))
	entry, err := store.Last(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, dashboard.ProvenanceLive, entry.Provenance)
	assert.Empty(t, entry.Cause)
	assert.True(t, testNow.Equal(entry.At), "at %s", entry.At)

	ttl, err := rdb.TTL(ctx, key(userID)).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= DefaultTTL, "ttl %s", ttl)

	// a later load overwrites the previous one
	require.NoError(t, store.Record(ctx, userID, &dashboard.Result{
		Provenance: dashboard.ProvenanceSynthetic,
		Cause:      errors.New("malformed analytics response: expected 7 labels, got 6"),
	}))
	entry, err = store.Last(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, dashboard.ProvenanceSynthetic, entry.Provenance)
	assert.Equal(t, "malformed analytics response: expected 7 labels, got 6", entry.Cause)
}
