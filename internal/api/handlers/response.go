package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"cricauction-backend/internal/auth"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every API endpoint answers with
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Auction retrieved successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse documents the failure envelope
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Unauthorized"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps a service error onto its status code and envelope
func respondError(c *gin.Context, err error) {
	var (
		notFound   *apperrors.NotFoundError
		validation *apperrors.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		respondFailure(c, http.StatusNotFound, capitalize(notFound.Entity)+" not found")
	case errors.Is(err, apperrors.ErrAuctionCodeConflict):
		respondFailure(c, http.StatusBadRequest, "Please try again")
	case apperrors.IsAlreadyExists(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &validation):
		respondFailure(c, http.StatusBadRequest, validationMessage(validation))
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, err.Error())
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		_ = c.Error(err)
		respondFailure(c, http.StatusInternalServerError, err.Error())
	}
}

func validationMessage(err *apperrors.ValidationError) string {
	if err.Field == "" || startsUpper(err.Message) {
		return err.Message
	}
	return err.Field + ": " + err.Message
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// bindJSON decodes the body, answering 400 itself when it cannot
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathID parses a uuid path parameter. An id that is not a uuid cannot name
// a stored row, so it is reported as notFound.
func pathID(c *gin.Context, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// currentSession returns the caller's session or nil for anonymous requests
func currentSession(c *gin.Context) *auth.Session {
	session, ok := auth.GetSession(c)
	if !ok {
		return nil
	}
	return session
}
