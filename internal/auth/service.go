package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenIssuer = "cricauction-backend"

// SessionClaims represents JWT token claims
type SessionClaims struct {
	UserID               string      `json:"user_id" example:"5b0c4a3e-2f5e-4a47-9b4f-9e7f1f6e2a11"`
	Name                 string      `json:"name" example:"Jane Doe"`
	Email                string      `json:"email" example:"jane.doe@example.com"`
	Image                string      `json:"image" example:"https://lh3.googleusercontent.com/a/photo"`
	Role                 models.Role `json:"role" example:"USER"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates session tokens and completes provider sign-ins
type AuthService struct {
	config   *AuthConfig
	provider IdentityProvider
	users    repository.UserRepositoryInterface
	now      func() time.Time
}

// NewAuthService creates a new authentication service. provider may be nil when
// sign-in is not configured; token validation keeps working.
func NewAuthService(config *AuthConfig, provider IdentityProvider, users repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:   config,
		provider: provider,
		users:    users,
		now:      time.Now,
	}, nil
}

// SetClock replaces the time source used for issuing and validating tokens
func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}

// Config returns the service configuration
func (s *AuthService) Config() *AuthConfig {
	return s.config
}

// ProviderEnabled reports whether provider sign-in is available
func (s *AuthService) ProviderEnabled() bool {
	return s.provider != nil
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// AuthURL returns the provider consent URL for state
func (s *AuthService) AuthURL(state string) (string, error) {
	if s.provider == nil {
		return "", apperrors.NewConfigurationError("sign-in provider is not configured")
	}
	return s.provider.AuthCodeURL(state), nil
}

// CompleteSignIn exchanges the authorization code, rejects unverified emails and
// finds or creates the local user keyed on email.
func (s *AuthService) CompleteSignIn(ctx context.Context, code string) (*models.User, error) {
	if s.provider == nil {
		return nil, apperrors.NewConfigurationError("sign-in provider is not configured")
	}

	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithField("email", profile.Email)
	if !profile.EmailVerified {
		log.Warn("Rejected sign-in with unverified email")
		return nil, apperrors.ErrEmailNotVerified
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, apperrors.ErrEmailNotVerified
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Email:    email,
		FullName: profile.Name,
		Image:    profile.Picture,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent first sign-in won the insert
			return s.users.GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("Created user on first sign-in")
	return user, nil
}

// IssueToken signs a session token for user
func (s *AuthService) IssueToken(user *models.User) (string, *Session, error) {
	now := s.now()
	session := &Session{
		UserID:    user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Image:     user.Image,
		Role:      user.Role,
		IssuedAt:  now.Truncate(time.Second),
		ExpiresAt: now.Add(s.config.SessionMaxAge).Truncate(time.Second),
	}
	token, err := s.sign(session)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func (s *AuthService) sign(session *Session) (string, error) {
	claims := SessionClaims{
		UserID: session.UserID.String(),
		Name:   session.Name,
		Email:  session.Email,
		Image:  session.Image,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   session.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates and parses a session token
func (s *AuthService) ValidateToken(tokenString string) (*Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidSession
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	session := &Session{
		UserID:    userID,
		Name:      claims.Name,
		Email:     claims.Email,
		Image:     claims.Image,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}

// NeedsRenewal reports whether session is old enough to be re-issued
func (s *AuthService) NeedsRenewal(session *Session) bool {
	return s.now().Sub(session.IssuedAt) > s.config.SessionUpdateAge
}

// Renew re-issues session with a fresh expiry
func (s *AuthService) Renew(session *Session) (string, *Session, error) {
	now := s.now()
	renewed := *session
	renewed.IssuedAt = now.Truncate(time.Second)
	renewed.ExpiresAt = now.Add(s.config.SessionMaxAge).Truncate(time.Second)
	token, err := s.sign(&renewed)
	if err != nil {
		return "", nil, err
	}
	return token, &renewed, nil
}
