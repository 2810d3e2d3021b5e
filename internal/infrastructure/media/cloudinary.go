package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ProfileTransformation crops uploads to a 300x300 square with automatic quality.
const ProfileTransformation = "c_fill,w_300,h_300/q_auto"

type uploadFunc func(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)

// CloudinaryUploader stores images on Cloudinary.
type CloudinaryUploader struct {
	upload uploadFunc
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{upload: cld.Upload.Upload, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	res, err := u.upload(ctx, r, uploader.UploadParams{
		Folder:         u.folder,
		Transformation: ProfileTransformation,
		AllowedFormats: api.CldAPIArray(allowedImageTypes),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %s: %w: %s", filename, ErrUndecodable, res.Error.Message)
	}
	return res.SecureURL, nil
}
