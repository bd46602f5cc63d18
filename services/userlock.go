package services

import (
	"sync"
)

// Mutations to a user's project set must be serialized: the dependency
// resolver reads the whole set and writes multiple rows, which is not safe
// under concurrent read-modify-write. One mutex per user; users never block
// each other.
var userLocks sync.Map

// lockUser acquires the per-user mutation lock and returns the unlock func
func lockUser(userID string) func() {
	v, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
