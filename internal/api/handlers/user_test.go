package handlers_test

import (
	"net/http"
	"testing"

	"cricauction-backend/internal/api/handlers"
	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/mocks"
	"cricauction-backend/internal/service"
	"cricauction-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	httpSuite       *testutils.HTTPTestSuite
	auth            *signedIn
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.auth = &signedIn{}
	suite.httpSuite = newHTTPSuite(suite.auth)

	handler := handlers.NewUserHandler(suite.mockUserService)
	suite.httpSuite.Router.PATCH("/api/user/:id", handler.UpdateUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestUpdateUser() {
	suite.T().Run("Own profile", func(t *testing.T) {
		id := uuid.New()
		session := suite.auth.as(id)
		user := &models.User{BaseModel: models.BaseModel{ID: id}, Email: "owner@example.com", FullName: "Jane Doe"}
		suite.mockUserService.EXPECT().
			Update(gomock.Any(), session, id, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ interface{}, _ uuid.UUID, req *service.UpdateUserRequest) (*models.User, error) {
				assert.Equal(t, "Jane Doe", *req.FullName)
				assert.Nil(t, req.Image)
				return user, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/user/"+id.String(), map[string]interface{}{"fullName": "Jane Doe"})

		var data models.User
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "User updated successfully", &data)
		assert.Equal(t, "Jane Doe", data.FullName)
	})

	suite.T().Run("Someone else", func(t *testing.T) {
		suite.auth.as(uuid.New())
		other := uuid.New()
		suite.mockUserService.EXPECT().Update(gomock.Any(), gomock.Any(), other, gomock.Any()).Return(nil, apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/user/"+other.String(), map[string]interface{}{"fullName": "Mallory"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Forbidden")
	})

	suite.T().Run("Malformed ID", func(t *testing.T) {
		suite.auth.as(uuid.New())

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/user/me", map[string]interface{}{"fullName": "Jane"})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "User not found")
	})
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
