package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryDriver is a TTL-aware in-process map. Expired entries are dropped
// lazily on read and by a once-a-minute sweep.
type memoryDriver struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func newMemoryDriver() *memoryDriver {
	d := &memoryDriver{entries: make(map[string]memoryEntry)}
	go d.sweep()
	return d
}

func (d *memoryDriver) Get(key string) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(d.entries, key)
		return nil, false
	}
	return e.value, true
}

func (d *memoryDriver) Set(key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}

	d.mu.Lock()
	d.entries[key] = memoryEntry{value: value, expiresAt: exp}
	d.mu.Unlock()
	return nil
}

func (d *memoryDriver) Delete(key string) error {
	d.mu.Lock()
	delete(d.entries, key)
	d.mu.Unlock()
	return nil
}

func (d *memoryDriver) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		d.mu.Lock()
		for k, e := range d.entries {
			if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
				delete(d.entries, k)
			}
		}
		d.mu.Unlock()
	}
}
