package service

import (
	"context"
	"sort"
)

// lineTracker records which lines (or orders) have a request in flight. Every request
// gets a token; a line stops being busy only when the request holding the latest token
// for it completes. Callers hold the owner's mutex.
type lineTracker struct {
	next    uint64
	latest  map[int]uint64
	pending map[int]pendingAdd
}

type pendingAdd struct {
	token  uint64
	cancel context.CancelFunc
}

func newLineTracker() *lineTracker {
	return &lineTracker{
		latest:  make(map[int]uint64),
		pending: make(map[int]pendingAdd),
	}
}

func (t *lineTracker) begin(key int) uint64 {
	t.next++
	t.latest[key] = t.next
	return t.next
}

func (t *lineTracker) finish(key int, token uint64) bool {
	if t.latest[key] != token {
		return false
	}
	delete(t.latest, key)
	return true
}

func (t *lineTracker) busy(key int) bool {
	_, ok := t.latest[key]
	return ok
}

func (t *lineTracker) busyKeys() []int {
	if len(t.latest) == 0 {
		return nil
	}
	keys := make([]int, 0, len(t.latest))
	for key := range t.latest {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

func (t *lineTracker) trackAdd(key int, token uint64, cancel context.CancelFunc) {
	t.pending[key] = pendingAdd{token: token, cancel: cancel}
}

func (t *lineTracker) untrackAdd(key int, token uint64) {
	if add, ok := t.pending[key]; ok && add.token == token {
		delete(t.pending, key)
	}
}

func (t *lineTracker) cancelAdd(key int) bool {
	add, ok := t.pending[key]
	if !ok {
		return false
	}
	delete(t.pending, key)
	add.cancel()
	return true
}
