package libs

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"shopper-backend/utils"
)

// LocalImageStore writes uploads to a directory that the router serves
// under /images.
type LocalImageStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir, baseURL: baseURL, now: time.Now}, nil
}

func (s *LocalImageStore) Save(_ context.Context, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	filename := utils.ImageFilename(utils.ImageFieldName, header.Filename, s.now())

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return utils.PublicImageURL(s.baseURL, filename), nil
}
