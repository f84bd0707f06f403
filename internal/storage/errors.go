package storage

import "errors"

var (
	// ErrUnknownBucket is returned when a view URL names a bucket this
	// deployment does not serve.
	ErrUnknownBucket = errors.New("unknown storage bucket")

	// ErrInvalidFileID is returned when a file id contains characters outside
	// the generated identifier alphabet.
	ErrInvalidFileID = errors.New("invalid file id")

	// ErrFileNotFound is returned when a file id does not resolve to a stored file.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAnImage is returned when an upload cannot be decoded as an image.
	ErrNotAnImage = errors.New("not an image")
)
