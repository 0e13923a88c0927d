package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/logging"
)

// fakeSource records lifecycle calls and lets tests push decoded codes.
type fakeSource struct {
	startErr error
	started  bool
	stopped  bool
	emit     func(code string)
}

func (f *fakeSource) Start(ctx context.Context, emit func(code string)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	f.emit = emit
	return nil
}

func (f *fakeSource) Stop() error {
	f.stopped = true
	return nil
}

func newManager() *Manager {
	return NewManager(logging.Discard())
}

func TestManager_StartDeliversCodes(t *testing.T) {
	m := newManager()
	src := &fakeSource{}

	var got []string
	s, err := m.Start(context.Background(), src, func(code string) {
		got = append(got, code)
	})
	require.NoError(t, err)
	require.True(t, src.started)
	assert.True(t, m.Active())

	src.emit("payload-1")
	src.emit("payload-2")
	assert.Equal(t, []string{"payload-1", "payload-2"}, got)

	require.NoError(t, m.Stop())
	assert.True(t, src.stopped)
	assert.False(t, m.Active())

	select {
	case <-s.Done():
	default:
		t.Fatal("session not marked done after Stop")
	}
}

func TestManager_StartStopsPriorSession(t *testing.T) {
	m := newManager()
	first := &fakeSource{}
	second := &fakeSource{}

	s1, err := m.Start(context.Background(), first, func(string) {})
	require.NoError(t, err)

	_, err = m.Start(context.Background(), second, func(string) {})
	require.NoError(t, err)

	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
	assert.True(t, m.Active())

	select {
	case <-s1.Done():
	default:
		t.Fatal("first session not done after being replaced")
	}
}

func TestManager_StartFailureLeavesNoSession(t *testing.T) {
	m := newManager()
	src := &fakeSource{startErr: errors.New("no camera")}

	_, err := m.Start(context.Background(), src, func(string) {})
	require.Error(t, err)

	assert.False(t, m.Active())
	assert.ErrorIs(t, m.Stop(), common.ErrNoActiveScan)
}

func TestManager_StopWithoutSession(t *testing.T) {
	assert.ErrorIs(t, newManager().Stop(), common.ErrNoActiveScan)
}

func TestManager_StopIsIdempotentPerSession(t *testing.T) {
	m := newManager()
	src := &fakeSource{}

	_, err := m.Start(context.Background(), src, func(string) {})
	require.NoError(t, err)

	require.NoError(t, m.Stop())
	assert.ErrorIs(t, m.Stop(), common.ErrNoActiveScan)
}
