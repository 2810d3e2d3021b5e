package media

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

const (
	// FieldName is the multipart field carrying the profile image.
	FieldName = "imageFile"
	// MaxImageSize is the largest accepted upload in bytes.
	MaxImageSize int64 = 5 << 20
	// PublicPath is where locally stored images are served.
	PublicPath = "/uploads"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image too large")
	// ErrUndecodable means the content passed the type check but is not a
	// readable image.
	ErrUndecodable = errors.New("undecodable image")
)

var allowedImageTypes = []string{"jpeg", "jpg", "png", "gif"}

// Uploader stores an accepted image and returns the URL it is reachable at.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Policy is the acceptance rule for profile images.
type Policy struct {
	MaxSize int64
	Types   []string
}

func DefaultPolicy() Policy {
	return Policy{MaxSize: MaxImageSize, Types: allowedImageTypes}
}

// Check requires both the file extension and the declared MIME type to name
// an allowed image type, and the size to be within MaxSize.
func (p Policy) Check(filename, contentType string, size int64) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !p.allows(ext) {
		return ErrUnsupportedType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrUnsupportedType
	}
	major, minor, ok := strings.Cut(strings.ToLower(mediaType), "/")
	if !ok || major != "image" || !p.allows(minor) {
		return ErrUnsupportedType
	}

	if p.MaxSize > 0 && size > p.MaxSize {
		return ErrTooLarge
	}
	return nil
}

func (p Policy) allows(kind string) bool {
	for _, t := range p.Types {
		if t == kind {
			return true
		}
	}
	return false
}
