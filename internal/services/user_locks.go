package services

import "sync"

// userLocks serializes the upsert-recompute-evaluate sequence per user.
// Data is strictly user-scoped, so two users never contend; two
// submissions from the same user queue up instead of interleaving a
// streak recompute with a half-written entry.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (locks *userLocks) lock(userID uint) *sync.Mutex {
	locks.mu.Lock()
	userLock, ok := locks.locks[userID]
	if !ok {
		userLock = &sync.Mutex{}
		locks.locks[userID] = userLock
	}
	locks.mu.Unlock()

	userLock.Lock()
	return userLock
}
