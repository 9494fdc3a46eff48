package contracts

import (
	"context"
	"time"
)

// LockerService provides short-lived distributed locks. Booking writes for a
// nutritionist's day are serialized behind one of these locks.
type LockerService interface {
	// TryLock returns whether the lock was acquired and, if so, a token that
	// must be presented to Unlock and Refresh.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	// Refresh extends the TTL of a lock if owned by lockValue
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
