package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a request without a valid session
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a valid session acting on something it does not own
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrAuctionNotFound = &NotFoundError{Entity: "auction"}
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound  = &NotFoundError{Entity: "player"}
)

// Already Exists Errors
var (
	ErrAuctionCodeConflict = &AlreadyExistsError{Entity: "auction code", Context: "after retry"}
)

// Authentication Errors
var (
	ErrUnauthenticated    = &AuthenticationError{Message: "Unauthorized"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid session token"}
	ErrEmailNotVerified   = &AuthenticationError{Message: "email address is not verified by the identity provider"}
	ErrInvalidOAuthState  = &AuthenticationError{Message: "invalid oauth state"}
	ErrMissingIDToken     = &AuthenticationError{Message: "no id_token field in oauth2 token"}
	ErrRegistrationClosed = &AuthenticationError{Message: "Player registration is closed"}
)

// Authorization Errors
var (
	ErrForbidden           = &AuthorizationError{Message: "Forbidden"}
	ErrNotAuctionOwner     = &AuthorizationError{Message: "Forbidden"}
	ErrTeamUpdateForbidden = &AuthorizationError{Message: "Unauthorized to update this team"}
	ErrTeamDeleteForbidden = &AuthorizationError{Message: "Unauthorized to delete this team"}
	ErrPlayerUpdateDenied  = &AuthorizationError{Message: "Unauthorized to update this player"}
	ErrPlayerDeleteDenied  = &AuthorizationError{Message: "Unauthorized to delete this player"}
	ErrRegistrationDenied  = &AuthorizationError{Message: "Player registration is closed"}
)

// Business Logic Errors
var (
	ErrTeamNotInAuction = &ValidationError{Field: "teamId", Message: "team does not belong to this auction"}
	ErrPublicIDRequired = &ValidationError{Field: "publicId", Message: "Public ID is required"}
	ErrImageNotFound    = &ValidationError{Field: "publicId", Message: "Image not found"}
	ErrInvalidDate      = &ValidationError{Field: "auctionDate", Message: "must be YYYY-MM-DD or RFC3339"}
	ErrSoldWithoutTeam  = &ValidationError{Field: "soldValue", Message: "a sold value requires a team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
