package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler stores admin-uploaded product images on local disk.
type UploadHandler struct {
	dir string
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{dir: cfg.Uploads.Dir}
}

// Upload accepts a multipart file field named "file" and stores it under a
// random name, keeping the original extension. The returned URL is served
// by the static route.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create uploads directory")
	}

	name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return errors.Wrap(err, "failed to create upload target")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, "failed to store uploaded file")
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": "/uploads/" + name}, "File uploaded")
}
