package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/utils"
)

// MediaHandler serves the media staging endpoint.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler constructs a MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// multipartOverhead covers the multipart boundary and part headers that
// surround the file bytes in the request body.
const multipartOverhead = 4 << 10

// Upload handles POST /v1/media. The file arrives as a multipart form
// field named "file"; its declared content type decides image or video
// handling. The request body is capped at the configured upload size so
// an oversized file is cut off instead of fully buffered.
func (h *MediaHandler) Upload(c *gin.Context) {
	limit := h.mediaService.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(c, utils.ErrMediaTooLarge)
			return
		}
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file upload")
		return
	}
	if fileHeader.Size > limit {
		respondError(c, utils.ErrMediaTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Could not read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Could not read upload")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.mediaService.Upload(c.Request.Context(), sellerID(c), contentType, data)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Media uploaded", result)
}

// isBodyTooLarge detects the MaxBytesReader cutoff. The multipart
// parser does not always preserve the error chain, so the message is
// matched as a fallback.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
