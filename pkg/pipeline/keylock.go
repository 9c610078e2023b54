package pipeline

import (
	"context"
	"sync"
)

// keyLock serializes work per key, entries are dropped when nobody holds or waits for them
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	ch   chan struct{}
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

// acquire blocks until key is free or ctx is done. The returned func releases the key.
func (k *keyLock) acquire(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyLockEntry{ch: make(chan struct{}, 1)}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
		return func() {
			<-entry.ch
			k.unref(key, entry)
		}, nil
	case <-ctx.Done():
		k.unref(key, entry)
		return nil, ctx.Err()
	}
}

func (k *keyLock) unref(key string, entry *keyLockEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
}
