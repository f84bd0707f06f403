// Package storage implements the local file bucket backing image and resume
// uploads. Files are addressed by bucket name plus an opaque random file id
// and served through public view URLs carrying a cache-busting timestamp, so
// browsers pick up re-uploads immediately.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	// register decoders for uploaded image formats
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/uniuri"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 85

	fileIDLen = 20
)

// Bucket is one local storage bucket.
type Bucket struct {
	root    string
	name    string
	project string

	// now is replaceable for tests; view URLs embed its millisecond value.
	now func() time.Time
}

// New creates a bucket from the storage configuration.
func New(cfg config.Storage) *Bucket {
	return &Bucket{
		root:    cfg.Path,
		name:    cfg.Bucket,
		project: cfg.Project,
		now:     time.Now,
	}
}

// Name returns the bucket identifier.
func (b *Bucket) Name() string { return b.name }

// SaveImage decodes the uploaded image, downscales it to maxImageWidth when
// wider, re-encodes it as JPEG and stores it under a fresh file id.
func (b *Bucket) SaveImage(src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return b.write(buf.Bytes())
}

// SaveFile stores the uploaded file verbatim under a fresh file id.
// Used for non-image documents such as the resume PDF.
func (b *Bucket) SaveFile(src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	return b.write(data)
}

func (b *Bucket) write(data []byte) (string, error) {
	dir := filepath.Join(b.root, b.name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	fileID := uniuri.NewLen(fileIDLen)

	if err := os.WriteFile(filepath.Join(dir, fileID), data, 0o640); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return fileID, nil
}

// ViewURL builds the public view URL for a stored file. The trailing t
// parameter is the current time in milliseconds; two sequential uploads of
// the same file therefore produce distinct URLs, defeating browser caching.
func (b *Bucket) ViewURL(fileID string) string {
	return fmt.Sprintf("/storage/buckets/%s/files/%s/view?project=%s&mode=admin&t=%d",
		url.PathEscape(b.name),
		url.PathEscape(fileID),
		url.QueryEscape(b.project),
		b.now().UnixMilli(),
	)
}

// FilePath resolves the on-disk path of a stored file. The bucket name must
// match and the file id must be a plain uniuri identifier; anything else is
// rejected before touching the filesystem.
func (b *Bucket) FilePath(bucket, fileID string) (string, error) {
	if bucket != b.name {
		return "", ErrUnknownBucket
	}

	if !validFileID(fileID) {
		return "", ErrInvalidFileID
	}

	p := filepath.Join(b.root, b.name, fileID)
	if _, err := os.Stat(p); err != nil {
		return "", ErrFileNotFound
	}

	return p, nil
}

// Delete removes a stored file. Missing files are not an error; delete is
// best-effort cleanup after an entity loses its upload.
func (b *Bucket) Delete(fileID string) error {
	if !validFileID(fileID) {
		return ErrInvalidFileID
	}

	err := os.Remove(filepath.Join(b.root, b.name, fileID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func validFileID(id string) bool {
	if len(id) == 0 || len(id) > 64 {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
