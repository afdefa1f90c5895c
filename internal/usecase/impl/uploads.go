package impl

import (
	"path"
	"strings"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	"blog/internal/usecase"
	"blog/internal/util"

	"github.com/google/uuid"
)

const maxStoredNameLength = 64

// imageContentTypes lists the uploads accepted for avatars and post images.
var imageContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// objectKey builds a collision-free storage key under prefix that keeps a readable file name.
func objectKey(prefix, filename string) string {
	return prefix + "/" + uuid.NewString() + "-" + safeFilename(filename)
}

// safeFilename drops directories and keeps only [A-Za-z0-9._-].
func safeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "file"
	}
	if len(name) > maxStoredNameLength {
		name = name[len(name)-maxStoredNameLength:]
	}

	return name
}

// validateImage checks an uploaded image against the size limit and the accepted content types.
func validateImage(file *usecase.FileInput, maxBytes int64) error {
	if file == nil || file.Content == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("image file is required"), "missing image")
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("image file exceeds "+util.FormatBytes(maxBytes)), "image too large")
	}
	if _, ok := imageContentTypes[strings.ToLower(file.ContentType)]; !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unsupported image type "+file.ContentType), "bad image type")
	}

	return nil
}
