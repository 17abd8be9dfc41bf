package services

import (
	"context"
	"mime/multipart"
)

type UploadService struct {
	images ImageStore
}

func NewUploadService(images ImageStore) *UploadService {
	return &UploadService{images: images}
}

// Upload stores one image and returns its public URL.
func (s *UploadService) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	return s.images.Save(ctx, header)
}
