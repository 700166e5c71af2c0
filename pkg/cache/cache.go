// Package cache is the key/value store behind sessions.
//
// Two drivers, mirroring the queue-driver split elsewhere in the codebase:
// Redis when REDIS_ADDR is configured and reachable, otherwise an
// in-process map. The memory driver is fine for a single instance and for
// tests; run Redis when there is more than one replica.
package cache

import (
	"sync"
	"time"

	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/logger"
)

// Driver is the minimal store contract sessions need.
type Driver interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

var (
	mu     sync.RWMutex
	driver Driver = newMemoryDriver()
)

// Connect selects the driver. Falls back to memory when Redis is not
// configured or cannot be reached.
func Connect() {
	addr := config.RedisAddr()
	if addr == "" {
		logger.Info("cache: using memory driver")
		return
	}

	d, err := newRedisDriver(addr, config.RedisPassword())
	if err != nil {
		logger.Warn("cache: redis unreachable, using memory driver", "addr", addr, "error", err)
		return
	}

	mu.Lock()
	driver = d
	mu.Unlock()
	logger.Info("cache: using redis driver", "addr", addr)
}

// Use swaps the active driver. Intended for tests.
func Use(d Driver) {
	mu.Lock()
	driver = d
	mu.Unlock()
}

func active() Driver {
	mu.RLock()
	defer mu.RUnlock()
	return driver
}

// Get fetches the raw value for key.
func Get(key string) ([]byte, bool) { return active().Get(key) }

// Set stores value under key for ttl.
func Set(key string, value []byte, ttl time.Duration) error { return active().Set(key, value, ttl) }

// Delete removes key.
func Delete(key string) error { return active().Delete(key) }
