package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"msc-team.backend/pkg/utils"
)

const profileImageSize = 300

// LocalUploader resizes images to the profile square and writes them as
// JPEG under a directory served at PublicPath.
type LocalUploader struct {
	dir     string
	baseURL string
	newName func() string
}

func NewLocalUploader(dir, publicBaseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &LocalUploader{
		dir:     dir,
		baseURL: publicBaseURL,
		newName: func() string { return utils.NewID().String() },
	}, nil
}

// Dir is the directory images are written to.
func (u *LocalUploader) Dir() string {
	return u.dir
}

func (u *LocalUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w: %v", filename, ErrUndecodable, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	thumb := imaging.Fill(img, profileImageSize, profileImageSize, imaging.Center, imaging.Lanczos)
	name := u.newName() + ".jpg"
	if err := imaging.Save(thumb, filepath.Join(u.dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	return u.baseURL + PublicPath + "/" + name, nil
}
