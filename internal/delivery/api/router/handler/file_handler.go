package handler

import (
	"net/http"
	"path"
	"strings"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandler serves uploaded avatars and post images from the file storage.
type FileHandler struct {
	storage service.FileStorage
}

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Storage service.FileStorage
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{storage: params.Storage}
}

// GetFile handles GET /files/*.
func (h *FileHandler) GetFile(c echo.Context) error {
	key, ok := objectKeyFromPath(c.Param("*"))
	if !ok {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	r, contentType, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer r.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, r)
}

// objectKeyFromPath rejects keys that are empty or that try to leave the bucket root.
func objectKeyFromPath(raw string) (string, bool) {
	if raw == "" || strings.Contains(raw, "\\") {
		return "", false
	}
	for _, segment := range strings.Split(raw, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", false
		}
	}

	return path.Clean(raw), true
}
