package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/storage"
)

// ImageService deletes uploaded images
type ImageService struct {
	store storage.ImageStore
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// NewImageService creates a new ImageService
func NewImageService(store storage.ImageStore) *ImageService {
	return &ImageService{store: store}
}

// DeleteImageRequest represents the request to delete an uploaded image
type DeleteImageRequest struct {
	PublicID string `json:"publicId" example:"auction-logos/abc123"`
}

// Delete removes the image stored under publicID
func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return apperrors.ErrPublicIDRequired
	}
	if s.store == nil {
		return apperrors.NewConfigurationError("image storage is not configured")
	}

	if err := s.store.Delete(ctx, publicID); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return apperrors.ErrImageNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}

	logger.WithContext(ctx).WithField("public_id", publicID).Info("Image deleted")
	return nil
}
