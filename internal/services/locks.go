package services

import (
	"sync"
)

// UserLocks serializes mutating operations per farmer. Every read-modify-write
// on a farmer's progress, task board or visit counter must run under that
// farmer's lock; snapshot reads stay lock-free and tolerate benign staleness.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the farmer's mutex and returns the unlock function.
func (l *UserLocks) Lock(farmerID string) func() {
	l.mu.Lock()
	m, ok := l.locks[farmerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[farmerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
