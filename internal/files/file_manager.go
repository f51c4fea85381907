package files

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	rimage "fakeshot/internal/image"
)

var ErrUnknownHero = errors.New("unknown hero")

type FileManager interface {
	DownloadToTemp(ctx context.Context, fileID string) (localPath string, cleanup func(), err error)
}

// ReadDataURL reads an uploaded file into a data URL so it can be kept as a
// chat's image source after the temp file is gone.
func ReadDataURL(path string, maxSize int64) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", fmt.Errorf("upload larger than %d bytes", maxSize)
	}
	return rimage.EncodeDataURL(http.DetectContentType(data), data), nil
}
