package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/internal/infrastructure/media"
	"msc-team.backend/internal/interfaces/http/response"
	"msc-team.backend/pkg/logger"
	"msc-team.backend/pkg/metrics"
)

const (
	imageURLKey     = "image_url"
	imageMissingKey = "image_missing"

	MsgImageNotAllowed   = "Only image files are allowed!"
	MsgImageTooLarge     = "Image must be smaller than 5MB"
	MsgImageRequired     = "Profile image is required"
	MsgImageUploadFailed = "Server error while uploading image"
	MsgMalformedUpload   = "Malformed multipart body"
)

// ImageUpload accepts the single image field, checks it against policy and
// hands it to uploader before the handler runs. The resulting URL is read
// with UploadedImageURL. When required is set, a missing file is recorded
// for the handler to report with the field errors rather than rejected here.
func ImageUpload(uploader media.Uploader, policy media.Policy, required bool, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile(media.FieldName)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				if required {
					c.Set(imageMissingKey, true)
				}
				c.Next()
				return
			}
			response.Abort(c, http.StatusBadRequest, domainerrors.CodeBadRequest, MsgMalformedUpload)
			return
		}

		if err := policy.Check(fh.Filename, fh.Header.Get("Content-Type"), fh.Size); err != nil {
			msg := MsgImageNotAllowed
			if errors.Is(err, media.ErrTooLarge) {
				msg = MsgImageTooLarge
			}
			rejectFile(c, required, m, msg)
			return
		}

		f, err := fh.Open()
		if err != nil {
			response.Error(c, err, MsgImageUploadFailed)
			c.Abort()
			return
		}
		defer f.Close()

		url, err := uploader.Upload(c.Request.Context(), fh.Filename, f)
		if errors.Is(err, media.ErrUndecodable) {
			logger.Warn(c.Request.Context(), "Image rejected by uploader",
				zap.String("filename", fh.Filename),
				zap.Error(err),
			)
			rejectFile(c, required, m, MsgImageNotAllowed)
			return
		}
		if err != nil {
			logger.Error(c.Request.Context(), "Image upload failed",
				zap.String("filename", fh.Filename),
				zap.Error(err),
			)
			response.Error(c, err, MsgImageUploadFailed)
			c.Abort()
			return
		}

		c.Set(imageURLKey, url)
		c.Next()
	}
}

func rejectFile(c *gin.Context, required bool, m *metrics.Metrics, msg string) {
	if required {
		m.RecordRegistration(metrics.OutcomeInvalidFile)
	}
	response.Error(c, domainerrors.InvalidFile(msg), MsgImageUploadFailed)
	c.Abort()
}

// UploadedImageURL returns the URL stored by ImageUpload, or "".
func UploadedImageURL(c *gin.Context) string {
	return c.GetString(imageURLKey)
}

// ImageMissing reports whether a required image was absent.
func ImageMissing(c *gin.Context) bool {
	return c.GetBool(imageMissingKey)
}
