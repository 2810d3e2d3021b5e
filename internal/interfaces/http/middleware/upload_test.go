package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msc-team.backend/internal/infrastructure/media"
	"msc-team.backend/pkg/metrics"
)

type fakeUploader struct {
	url   string
	err   error
	calls int
	got   []byte
}

func (f *fakeUploader) Upload(_ context.Context, _ string, r io.Reader) (string, error) {
	f.calls++
	f.got, _ = io.ReadAll(r)
	return f.url, f.err
}

func multipartRequest(t *testing.T, method, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Ada Lovelace"))
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+media.FieldName+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type uploadSeen struct {
	url     string
	missing bool
	ran     bool
}

func uploadRouter(up media.Uploader, policy media.Policy, required bool, m *metrics.Metrics) (*gin.Engine, *uploadSeen) {
	gin.SetMode(gin.TestMode)
	seen := &uploadSeen{}
	r := gin.New()
	r.POST("/upload", ImageUpload(up, policy, required, m), func(c *gin.Context) {
		seen.ran = true
		seen.url = UploadedImageURL(c)
		seen.missing = ImageMissing(c)
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestImageUpload_Accepted(t *testing.T) {
	up := &fakeUploader{url: "https://img.example.com/a.jpg"}
	r, seen := uploadRouter(up, media.DefaultPolicy(), true, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "me.jpg", "image/jpeg", []byte("jpeg-bytes")))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, seen.ran)
	assert.Equal(t, "https://img.example.com/a.jpg", seen.url)
	assert.False(t, seen.missing)
	assert.Equal(t, "jpeg-bytes", string(up.got))
}

func TestImageUpload_Missing(t *testing.T) {
	up := &fakeUploader{}

	r, seen := uploadRouter(up, media.DefaultPolicy(), true, nil)
	r.ServeHTTP(httptest.NewRecorder(), multipartRequest(t, http.MethodPost, "", "", nil))
	assert.True(t, seen.ran)
	assert.True(t, seen.missing)
	assert.Empty(t, seen.url)

	r, seen = uploadRouter(up, media.DefaultPolicy(), false, nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, seen.ran)
	assert.False(t, seen.missing, "optional mode never records a missing image")
	assert.Zero(t, up.calls)
}

func TestImageUpload_RejectsInvalidFile(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		policy      media.Policy
		msg         string
	}{
		{"pdf", "cv.pdf", "application/pdf", media.DefaultPolicy(), MsgImageNotAllowed},
		{"spoofed extension", "cv.png", "application/pdf", media.DefaultPolicy(), MsgImageNotAllowed},
		{"too large", "big.png", "image/png", media.Policy{MaxSize: 4, Types: []string{"png"}}, MsgImageTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			up := &fakeUploader{}
			m := metrics.New()
			r, seen := uploadRouter(up, tc.policy, true, m)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, multipartRequest(t, http.MethodPost, tc.filename, tc.contentType, []byte("0123456789")))

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"success":false,"code":"INVALID_FILE","message":"`+tc.msg+`"}`, w.Body.String())
			assert.False(t, seen.ran)
			assert.Zero(t, up.calls)
		})
	}
}

func TestImageUpload_RejectsUndecodableImage(t *testing.T) {
	local, err := media.NewLocalUploader(t.TempDir(), "http://localhost:5001")
	require.NoError(t, err)
	cloud := &fakeUploader{err: fmt.Errorf("cloudinary upload a.png: %w: Invalid image file", media.ErrUndecodable)}

	for name, up := range map[string]media.Uploader{"local": local, "cloudinary": cloud} {
		t.Run(name, func(t *testing.T) {
			m := metrics.New()
			r, seen := uploadRouter(up, media.DefaultPolicy(), true, m)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "a.png", "image/png", []byte("not an image")))

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"success":false,"code":"INVALID_FILE","message":"`+MsgImageNotAllowed+`"}`, w.Body.String())
			assert.False(t, seen.ran)

			expected := `
# HELP team_member_registrations_total Team member registration attempts by outcome.
# TYPE team_member_registrations_total counter
team_member_registrations_total{outcome="invalid_file"} 1
`
			require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "team_member_registrations_total"))
		})
	}
}

func TestImageUpload_UploaderFailure(t *testing.T) {
	up := &fakeUploader{err: errors.New("cloud unavailable")}
	r, seen := uploadRouter(up, media.DefaultPolicy(), true, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "me.png", "image/png", []byte("png")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), MsgImageUploadFailed)
	assert.False(t, seen.ran)
}

func TestImageUpload_MalformedMultipart(t *testing.T) {
	r, seen := uploadRouter(&fakeUploader{}, media.DefaultPolicy(), true, nil)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("--broken\r\nnot a part"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=broken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), MsgMalformedUpload)
	assert.False(t, seen.ran)
}
