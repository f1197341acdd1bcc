package service

import (
	"sync"
)

// gameLocks serializes guess submissions per game. Different games never
// share a lock, so cross-game submissions do not contend.
type gameLocks struct {
	locks sync.Map // int64 -> *sync.Mutex
}

// Lock acquires the lock for a game and returns the matching unlock.
// Mutexes are kept for the process lifetime; the set of games seen by one
// process is small enough that no eviction is needed.
func (l *gameLocks) Lock(gameID int64) func() {
	v, _ := l.locks.LoadOrStore(gameID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
