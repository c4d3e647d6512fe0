package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusChannel_LoadingTracksInflight(t *testing.T) {
	s := NewStatusChannel(0)

	assert.False(t, s.Snapshot().Loading)

	s.Begin()
	s.Begin()
	assert.True(t, s.Snapshot().Loading)

	s.End()
	assert.True(t, s.Snapshot().Loading, "loading stays up while any op is in flight")

	s.End()
	assert.False(t, s.Snapshot().Loading)
}

func TestStatusChannel_BeginClearsError(t *testing.T) {
	s := NewStatusChannel(0)

	s.Fail("boom")
	assert.Equal(t, "boom", s.Snapshot().Error)

	s.Begin()
	assert.Empty(t, s.Snapshot().Error, "a fresh request starts from a clean error")
	s.End()
}

func TestStatusChannel_SucceedAndFail(t *testing.T) {
	s := NewStatusChannel(0)

	s.Succeed("done")
	snap := s.Snapshot()
	assert.Equal(t, "done", snap.Success)
	assert.Empty(t, snap.Error)

	s.Fail("boom")
	snap = s.Snapshot()
	assert.Equal(t, "boom", snap.Error)
	assert.Equal(t, "done", snap.Success)

	s.Clear()
	snap = s.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Empty(t, snap.Success)
}

func TestStatusChannel_AutoClear(t *testing.T) {
	s := NewStatusChannel(20 * time.Millisecond)

	s.Succeed("done")
	s.Fail("boom")

	assert.Eventually(t, func() bool {
		snap := s.Snapshot()
		return snap.Success == "" && snap.Error == ""
	}, time.Second, 5*time.Millisecond)
}

func TestStatusChannel_AutoClearRearmsOnNewMessage(t *testing.T) {
	s := NewStatusChannel(30 * time.Millisecond)

	s.Succeed("first")
	time.Sleep(15 * time.Millisecond)
	s.Succeed("second")
	time.Sleep(20 * time.Millisecond)

	// The second message re-armed the timer, so it is still visible here.
	assert.Equal(t, "second", s.Snapshot().Success)

	assert.Eventually(t, func() bool {
		return s.Snapshot().Success == ""
	}, time.Second, 5*time.Millisecond)
}

func TestStatusChannel_NoAutoClearWhenDisabled(t *testing.T) {
	s := NewStatusChannel(0)

	s.Succeed("sticky")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, "sticky", s.Snapshot().Success)
}
