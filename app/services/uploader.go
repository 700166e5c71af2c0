// Package services holds the two outbound integrations: media upload to
// the object store and preference creation at the payment gateway.
package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/turboost/store/pkg/metrics"
	"github.com/turboost/store/pkg/storage"
)

// Uploader writes uploaded files to the object store under
// {folder}/{uuid}-{filename} and returns their public URL.
//
// The random token makes every key unique: uploading the same file twice
// stores two objects. There is no dedup and no overwrite.
type Uploader struct {
	disk storage.Disk
}

func NewUploader(disk storage.Disk) *Uploader {
	return &Uploader{disk: disk}
}

// Upload stores the file and returns its public URL. A nil header or an
// empty filename means the form slot was submitted empty; that returns
// ("", nil) and writes nothing.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}

	file, err := fh.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("uploader: open %s: %w", fh.Filename, err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), filepath.Base(fh.Filename))
	contentType := fh.Header.Get("Content-Type")

	if err := u.disk.Put(ctx, key, contentType, file); err != nil {
		metrics.UploadsTotal.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("uploader: store %s: %w", key, err)
	}

	metrics.UploadsTotal.WithLabelValues(folder, "ok").Inc()
	return u.disk.URL(key), nil
}
