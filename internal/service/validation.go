package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewValidator returns a validator that reports json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and converts the first failure into a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describe(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match the format %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// authorize checks that actor is signed in and that its role grants action
func authorize(policy *auth.Policy, actor *auth.Session, action auth.Action) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !policy.Allowed(actor.Role, action) {
		return apperrors.ErrForbidden
	}
	return nil
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// loadAuction fetches an auction or returns ErrAuctionNotFound
func loadAuction(ctx context.Context, repo repository.AuctionRepositoryInterface, id uuid.UUID) (*models.Auction, error) {
	auction, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAuctionNotFound, "auction")
	}
	return auction, nil
}
