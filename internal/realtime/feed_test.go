package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFeed(t *testing.T) *RedisFeed {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisFeed(rdb, "test", zap.NewNop())
}

func TestRedisFeed_PublishSubscribeRoundtrip(t *testing.T) {
	f := newTestFeed(t)
	ctx := context.Background()

	sub, err := f.Subscribe(ctx, TableEmployees)
	require.NoError(t, err)
	defer sub.Close()

	assert.Equal(t, Connected, sub.State())

	id := uuid.New()
	err = f.Publish(ctx, Event{
		Table: TableEmployees,
		Type:  EventInsert,
		Row:   Row{ID: id, Name: "Ada"},
	})
	require.NoError(t, err)

	select {
	case e := <-sub.Events():
		assert.Equal(t, TableEmployees, e.Table)
		assert.Equal(t, EventInsert, e.Type)
		assert.Equal(t, id, e.Row.ID)
		assert.Equal(t, "Ada", e.Row.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestRedisFeed_TableChannelsAreIsolated(t *testing.T) {
	f := newTestFeed(t)
	ctx := context.Background()

	empSub, err := f.Subscribe(ctx, TableEmployees)
	require.NoError(t, err)
	defer empSub.Close()

	projSub, err := f.Subscribe(ctx, TableProjects)
	require.NoError(t, err)
	defer projSub.Close()

	require.NoError(t, f.Publish(ctx, Event{
		Table: TableProjects,
		Type:  EventInsert,
		Row:   Row{ID: uuid.New(), Name: "Apollo"},
	}))

	select {
	case e := <-projSub.Events():
		assert.Equal(t, TableProjects, e.Table)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for project event")
	}

	select {
	case e := <-empSub.Events():
		t.Fatalf("employee channel received foreign event: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRedisFeed_BadPayloadReportedOnErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	f := NewRedisFeed(rdb, "test", zap.NewNop())
	ctx := context.Background()

	sub, err := f.Subscribe(ctx, TableEmployees)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, rdb.Publish(ctx, "test:changes:employees", "not-json").Err())

	select {
	case err := <-sub.Errors():
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for decode error")
	}
}

func TestSubscription_CloseIdempotent(t *testing.T) {
	f := newTestFeed(t)

	sub, err := f.Subscribe(context.Background(), TableEmployees)
	require.NoError(t, err)

	assert.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())

	// The event channel drains and closes after Close.
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Events():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, Disconnected, sub.State())
}

func TestSubscription_ContextCancelStops(t *testing.T) {
	f := newTestFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := f.Subscribe(ctx, TableEmployees)
	require.NoError(t, err)
	defer sub.Close()

	cancel()

	assert.Eventually(t, func() bool {
		return sub.State() == Disconnected
	}, 2*time.Second, 10*time.Millisecond)
}
