package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "auction"}
		assert.Equal(t, "auction not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "team"}, ErrTeamNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrPlayerNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("load auction: %w", ErrAuctionNotFound)
		assert.True(t, errors.Is(wrapped, ErrAuctionNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrForbidden))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "auction code already exists after retry", ErrAuctionCodeConflict.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrAuctionCodeConflict)))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("auctionName", "is required")
		assert.Equal(t, "validation error: auctionName - is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("authentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthenticated))
		assert.True(t, IsAuthentication(ErrRegistrationClosed))
		assert.False(t, IsAuthentication(ErrForbidden))
	})

	t.Run("authorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(fmt.Errorf("update team: %w", ErrTeamUpdateForbidden)))
		assert.Equal(t, "Forbidden", ErrNotAuctionOwner.Error())
		assert.False(t, IsAuthorization(ErrUnauthenticated))
	})

	t.Run("configuration", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing client id")))
	})
}
