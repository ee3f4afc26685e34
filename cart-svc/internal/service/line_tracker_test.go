package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTracker_LateCompletionKeepsNewerBusy(t *testing.T) {
	tracker := newLineTracker()

	first := tracker.begin(5)
	second := tracker.begin(5)

	assert.True(t, tracker.finish(5, second))
	assert.False(t, tracker.busy(5))

	third := tracker.begin(5)
	assert.False(t, tracker.finish(5, first))
	assert.True(t, tracker.busy(5))

	assert.True(t, tracker.finish(5, third))
	assert.False(t, tracker.busy(5))
}

func TestLineTracker_KeysAreIndependent(t *testing.T) {
	tracker := newLineTracker()

	a := tracker.begin(5)
	tracker.begin(9)
	assert.Equal(t, []int{5, 9}, tracker.busyKeys())

	tracker.finish(5, a)
	assert.Equal(t, []int{9}, tracker.busyKeys())
}

func TestLineTracker_CancelAdd(t *testing.T) {
	tracker := newLineTracker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := tracker.begin(7)
	tracker.trackAdd(7, token, cancel)

	assert.True(t, tracker.cancelAdd(7))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, tracker.cancelAdd(7))
}

func TestLineTracker_UntrackOnlyOwnAdd(t *testing.T) {
	tracker := newLineTracker()
	_, cancelOld := context.WithCancel(context.Background())
	defer cancelOld()
	newCtx, cancelNew := context.WithCancel(context.Background())
	defer cancelNew()

	old := tracker.begin(7)
	tracker.trackAdd(7, old, cancelOld)
	current := tracker.begin(7)
	tracker.trackAdd(7, current, cancelNew)

	tracker.untrackAdd(7, old)
	assert.True(t, tracker.cancelAdd(7))
	assert.ErrorIs(t, newCtx.Err(), context.Canceled)
}
