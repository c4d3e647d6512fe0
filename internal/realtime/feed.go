package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SubState is the lifecycle of one table-channel subscription.
type SubState int32

const (
	Disconnected SubState = iota
	Connecting
	Connected
)

func (s SubState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Subscription is a live table-channel subscription. Events are delivered on a
// buffered channel; a consumer that falls too far behind may miss events, as
// redis pub/sub is at-most-once per subscriber. Reconnection after a transport
// drop is the transport's concern, not handled here.
type Subscription struct {
	events chan Event
	errors chan error
	state  atomic.Int32
	cancel context.CancelFunc
	once   sync.Once
}

// Events returns the channel of decoded change events.
func (s *Subscription) Events() <-chan Event { return s.events }

// Errors returns the channel of subscription errors (bad payloads).
func (s *Subscription) Errors() <-chan error { return s.errors }

// State reports the current subscription state.
func (s *Subscription) State() SubState { return SubState(s.state.Load()) }

// Close stops the subscription and releases its resources. Safe to call more
// than once. Implements io.Closer.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// RedisFeed carries row-change events over redis pub/sub, one channel per
// watched table. Writers publish the full event JSON after the database write
// has committed.
type RedisFeed struct {
	rdb    *redis.Client
	prefix string
	log    *zap.Logger
}

func NewRedisFeed(rdb *redis.Client, prefix string, log *zap.Logger) *RedisFeed {
	return &RedisFeed{rdb: rdb, prefix: prefix, log: log}
}

func (f *RedisFeed) channel(table string) string {
	return fmt.Sprintf("%s:changes:%s", f.prefix, table)
}

// Publish sends e to the channel of its table.
func (f *RedisFeed) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := f.rdb.Publish(ctx, f.channel(e.Table), payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Subscribe starts listening on the channel of the given table. The returned
// subscription moves Connecting -> Connected once redis acknowledges the
// subscribe. Caller must Close() the subscription when done; cancelling ctx
// also stops it.
func (f *RedisFeed) Subscribe(ctx context.Context, table string) (*Subscription, error) {
	pubsub := f.rdb.Subscribe(ctx, f.channel(table))

	subCtx, cancelFunc := context.WithCancel(ctx)
	sub := &Subscription{
		events: make(chan Event, 16),
		errors: make(chan error, 16),
		cancel: cancelFunc,
	}
	sub.state.Store(int32(Connecting))

	// Wait for the subscribe acknowledgment before reporting Connected.
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancelFunc()
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", table, err)
	}
	sub.state.Store(int32(Connected))
	f.log.Sugar().Debugw("subscribed to change channel", "channel", f.channel(table))

	go func() {
		defer close(sub.events)
		defer close(sub.errors)
		defer pubsub.Close()
		defer sub.state.Store(int32(Disconnected))

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var e Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					select {
					case sub.errors <- fmt.Errorf("decode change event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case sub.events <- e:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return sub, nil
}
