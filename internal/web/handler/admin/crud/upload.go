package crud

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofolio/gofolio/internal/storage"
)

// FormImage stores the uploaded image from a multipart form field and returns
// its cache-busted view URL. An absent file is not an error; the returned URL
// is empty and the caller keeps the previous value.
func FormImage(c *fiber.Ctx, b *storage.Bucket, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: cannot read upload", ErrValidation)
	}
	defer func() { _ = src.Close() }()

	id, err := b.SaveImage(src)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) {
			return "", fmt.Errorf("%w: file is not a supported image", ErrValidation)
		}

		return "", err
	}

	return b.ViewURL(id), nil
}

// FormFile stores an uploaded file verbatim, for non-image assets such as a
// resume PDF. Same absent-file contract as FormImage.
func FormFile(c *fiber.Ctx, b *storage.Bucket, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: cannot read upload", ErrValidation)
	}
	defer func() { _ = src.Close() }()

	id, err := b.SaveFile(src)
	if err != nil {
		return "", err
	}

	return b.ViewURL(id), nil
}
