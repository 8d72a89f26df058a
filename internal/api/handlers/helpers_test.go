package handlers_test

import (
	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	"cricauction-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// signedIn stands in for the auth middleware: requests carry whatever
// session it currently holds.
type signedIn struct {
	session *auth.Session
}

func (s *signedIn) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.session != nil {
			auth.SetSession(c, s.session)
		}
		c.Next()
	}
}

func (s *signedIn) as(userID uuid.UUID) *auth.Session {
	s.session = &auth.Session{UserID: userID, Email: "owner@example.com", Name: "Owner", Role: models.RoleUser}
	return s.session
}

func (s *signedIn) signOut() {
	s.session = nil
}

func newHTTPSuite(s *signedIn) *testutils.HTTPTestSuite {
	return testutils.SetupHTTPTest(s.middleware())
}
