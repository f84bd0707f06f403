// Package files serves stored uploads on the public view route. The URL
// shape matches what the stored content rows reference, query string
// included, so existing image and resume links resolve unchanged.
package files

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web/handler"
)

// Path is the view route. The project and t query parameters are accepted
// and ignored; t only exists for cache busting.
const Path = "/storage/buckets/:bucket/files/:id/view"

// Service is the file-serving handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	bucket *storage.Bucket
}

// Handler is the file-serving handler.
var Handler = Service{}

// Init initializes the file-serving handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, bucket *storage.Bucket) error {
	if app == nil || cfg == nil || bucket == nil {
		return errors.New("app, cfg or bucket is nil")
	}

	s.cfg = cfg
	s.bucket = bucket

	app.Get(Path, s.Get)

	return nil
}

// Get streams the stored file. Unknown buckets, malformed ids and missing
// files all answer 404 without distinguishing the cause.
func (s *Service) Get(c *fiber.Ctx) error {
	path, err := s.bucket.FilePath(c.Params("bucket"), c.Params("id"))
	if err != nil {
		if !errors.Is(err, storage.ErrUnknownBucket) &&
			!errors.Is(err, storage.ErrInvalidFileID) &&
			!errors.Is(err, storage.ErrFileNotFound) {
			log.Error().Err(err).Msg("file lookup failed")
		}

		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.SendFile(path)
}
