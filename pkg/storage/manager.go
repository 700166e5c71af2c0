package storage

import (
	"fmt"
	"sync"

	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the configured disks. Call once at startup.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDisk()
	disks["local"] = newLocalDisk()

	if config.StorageS3Key() != "" || config.StorageS3Endpoint() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		logger.Warn("storage: default disk not configured, using local", "disk", defaultDisk)
		defaultDisk = "local"
	}
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}

// Use returns the named disk ("local" or "s3").
func Use(name string) (Disk, error) {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// RegisterDisk plugs in a custom Disk. Intended for tests.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}
