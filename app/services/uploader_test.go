package services_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turboost/store/app/services"
)

// memDisk is an in-memory object store for tests.
type memDisk struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func newMemDisk() *memDisk {
	return &memDisk{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (d *memDisk) Put(ctx context.Context, path, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.objects[path] = data
	d.contentTypes[path] = contentType
	return nil
}

func (d *memDisk) Get(ctx context.Context, path string) ([]byte, error) {
	return d.objects[path], nil
}

func (d *memDisk) Exists(ctx context.Context, path string) bool {
	_, ok := d.objects[path]
	return ok
}

func (d *memDisk) Delete(ctx context.Context, path string) error {
	delete(d.objects, path)
	return nil
}

func (d *memDisk) URL(path string) string { return "https://cdn.test/" + path }

// formFileHeader builds a real multipart.FileHeader the way a handler
// would receive it.
func formFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="` + field + `"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadEmptySlot(t *testing.T) {
	disk := newMemDisk()
	u := services.NewUploader(disk)

	url, err := u.Upload(context.Background(), nil, "products")
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, disk.objects)
}

func TestUploadStoresUnderFolderWithRandomKey(t *testing.T) {
	disk := newMemDisk()
	u := services.NewUploader(disk)

	fh := formFileHeader(t, "imagemURL1", "frente.jpg", "image/jpeg", []byte("jpeg-bytes"))

	url, err := u.Upload(context.Background(), fh, "products")
	require.NoError(t, err)
	require.Len(t, disk.objects, 1)

	var key string
	for k := range disk.objects {
		key = k
	}

	// products/{uuid}-frente.jpg
	keyPattern := regexp.MustCompile(`^products/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-frente\.jpg$`)
	assert.Regexp(t, keyPattern, key)

	assert.Equal(t, "https://cdn.test/"+key, url)
	assert.Equal(t, []byte("jpeg-bytes"), disk.objects[key])
	assert.Equal(t, "image/jpeg", disk.contentTypes[key])
}

func TestUploadStripsDirectoryFromFilename(t *testing.T) {
	disk := newMemDisk()
	u := services.NewUploader(disk)

	fh := formFileHeader(t, "logoFile", "../../etc/passwd", "text/plain", []byte("x"))

	_, err := u.Upload(context.Background(), fh, "branding")
	require.NoError(t, err)

	for key := range disk.objects {
		assert.True(t, strings.HasPrefix(key, "branding/"), "key %q escaped the folder", key)
		assert.False(t, strings.Contains(key[len("branding/"):], "/"), "key %q kept path separators", key)
	}
}

func TestUploadSameFileTwiceStoresTwoObjects(t *testing.T) {
	disk := newMemDisk()
	u := services.NewUploader(disk)

	fh := formFileHeader(t, "somOriginal", "ronco.mp3", "audio/mpeg", []byte("mp3"))

	url1, err := u.Upload(context.Background(), fh, "sounds")
	require.NoError(t, err)
	url2, err := u.Upload(context.Background(), fh, "sounds")
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)
	assert.Len(t, disk.objects, 2)
}
