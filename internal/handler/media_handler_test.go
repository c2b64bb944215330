package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telmart/console_api/internal/config"
	"github.com/telmart/console_api/internal/service"
)

func newMediaRouter(t *testing.T, maxUploadBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewMediaService(&config.Config{
		Media: config.MediaConfig{
			Region:         "me-central-1",
			Bucket:         "telmart-media-test",
			MaxUploadBytes: maxUploadBytes,
		},
	})
	handler := NewMediaHandler(svc)
	router := gin.New()
	router.POST("/v1/media", handler.Upload)
	return router
}

func uploadRequest(t *testing.T, contentType string, size int) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="upload.bin"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/media", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestMediaUpload_OversizedBodyCutOff(t *testing.T) {
	router := newMediaRouter(t, 1024)

	// Well past the cap plus multipart overhead; the body reader is
	// truncated before the file is buffered.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "image/jpeg", 64<<10))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "MEDIA_TOO_LARGE")
}

func TestMediaUpload_DeclaredSizeOverLimit(t *testing.T) {
	router := newMediaRouter(t, 1024)

	// Fits inside the multipart overhead allowance but exceeds the cap.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "image/jpeg", 2000))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMediaUpload_UnsupportedTypeRejected(t *testing.T) {
	router := newMediaRouter(t, 1024)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "text/plain", 128))

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestMediaUpload_MissingFileField(t *testing.T) {
	router := newMediaRouter(t, 1024)

	req := httptest.NewRequest(http.MethodPost, "/v1/media", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
