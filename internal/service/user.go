package service

import (
	"context"
	"fmt"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService provides user-related business logic
type UserService struct {
	repo      repository.UserRepositoryInterface
	policy    *auth.Policy
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface, policy *auth.Policy, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		policy:    policy,
		validator: validator,
	}
}

// UpdateUserRequest represents a profile update
type UpdateUserRequest struct {
	FullName      *string `json:"fullName" validate:"omitempty,min=2,max=200" example:"Jane Doe"`
	Image         *string `json:"image" validate:"omitempty,url"`
	ImagePublicID *string `json:"imagePublicId"`
}

// Update changes the caller's own profile
func (s *UserService) Update(ctx context.Context, actor *auth.Session, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := authorize(s.policy, actor, auth.ActionUserUpdate); err != nil {
		return nil, err
	}
	if !actor.IsUser(id) {
		return nil, apperrors.ErrForbidden
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ImagePublicID != nil {
		updates["image_public_id"] = *req.ImagePublicID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		logger.WithContext(ctx).WithField("user_id", id).Info("User profile updated")
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return user, nil
}
