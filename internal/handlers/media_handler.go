package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/media"
	"github.com/matlynx/matlynx-api/internal/middleware"
)

const maxUploadBytes = 5 << 20

type MediaHandler struct {
	uploader *media.Uploader
}

func NewMediaHandler(uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload takes a multipart image, converts it to a bounded-size WebP and
// returns the public URL to embed in a profile or listing.
func (h *MediaHandler) Upload(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Images are limited to 5 MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer file.Close()

	processed, err := media.Process(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Only JPEG and PNG images are accepted.")
		return
	}

	key := fmt.Sprintf("uploads/%s/%s.webp", email, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, processed)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
