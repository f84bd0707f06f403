package storage

import (
	"bytes"
	"image"
	"image/png"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofolio/gofolio/internal/config"
)

func newTestBucket(t *testing.T) *Bucket {
	t.Helper()

	return New(config.Storage{
		Path:    t.TempDir(),
		Bucket:  "portfolio",
		Project: "gofolio",
	})
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func TestSaveImageAndServe(t *testing.T) {
	b := newTestBucket(t)

	fileID, err := b.SaveImage(bytes.NewReader(encodePNG(t, 10, 10)))
	require.NoError(t, err)
	assert.Len(t, fileID, fileIDLen)

	p, err := b.FilePath("portfolio", fileID)
	require.NoError(t, err)
	assert.NotEmpty(t, p)
}

func TestSaveImageRejectsGarbage(t *testing.T) {
	b := newTestBucket(t)

	_, err := b.SaveImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestViewURLShape(t *testing.T) {
	b := newTestBucket(t)

	u := b.ViewURL("abcDEF123")
	pattern := regexp.MustCompile(`^/storage/buckets/portfolio/files/abcDEF123/view\?project=gofolio&mode=admin&t=\d+$`)
	assert.Regexp(t, pattern, u)
}

func TestViewURLTimestampChangesBetweenUploads(t *testing.T) {
	b := newTestBucket(t)

	base := time.Unix(1700000000, 0)
	b.now = func() time.Time { return base }
	first := b.ViewURL("sameFile")

	b.now = func() time.Time { return base.Add(time.Second) }
	second := b.ViewURL("sameFile")

	assert.NotEqual(t, first, second)
}

func TestFilePathRejectsTraversal(t *testing.T) {
	b := newTestBucket(t)

	_, err := b.FilePath("portfolio", "../evil")
	assert.ErrorIs(t, err, ErrInvalidFileID)

	_, err = b.FilePath("otherbucket", "abc123")
	assert.ErrorIs(t, err, ErrUnknownBucket)

	_, err = b.FilePath("portfolio", "doesNotExist000000")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	b := newTestBucket(t)

	assert.NoError(t, b.Delete("neverStored0000"))
	assert.ErrorIs(t, b.Delete("../evil"), ErrInvalidFileID)
}
