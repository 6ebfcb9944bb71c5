// Package lock serialises sync passes per workspace.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrLocked is returned when the key is already held.
var ErrLocked = errors.New("lock already held")

// Release frees a held lock. Calling it more than once is a no-op.
type Release func()

// Locker grants exclusive, expiring ownership of a key.
type Locker interface {
	// Acquire takes the lock for key for at most ttl.
	// It returns ErrLocked without blocking when another owner holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

type entry struct {
	token   string
	expires time.Time
}

// MemoryLocker is a Locker for a single process.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]entry
	now   func() time.Time
}

// NewMemoryLocker creates an in-process locker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]entry),
		now:   time.Now,
	}
}

// Acquire takes the lock for key unless a live owner holds it.
func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.expires) {
		return nil, ErrLocked
	}

	token := uuid.NewString()
	l.locks[key] = entry{token: token, expires: now.Add(ttl)}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if held, ok := l.locks[key]; ok && held.token == token {
				delete(l.locks, key)
			}
		})
	}, nil
}
