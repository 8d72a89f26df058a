package service_test

import (
	"context"
	"errors"
	"testing"

	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/mocks"
	"cricauction-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, testPolicy(), service.NewValidator())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestUpdate_OwnProfile() {
	id := uuid.New()
	name := "Jane Captain"
	existing := &models.User{BaseModel: models.BaseModel{ID: id}, FullName: "Jane", Email: "jane@example.com"}
	updated := *existing
	updated.FullName = name

	gomock.InOrder(
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
		suite.mockUserRepo.EXPECT().Update(gomock.Any(), id, map[string]interface{}{"full_name": name}).Return(nil),
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(&updated, nil),
	)

	user, err := suite.userService.Update(context.Background(), sessionFor(id), id, &service.UpdateUserRequest{FullName: &name})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), name, user.FullName)
}

func (suite *UserServiceTestSuite) TestUpdate_EmptyPatchReturnsProfile() {
	id := uuid.New()
	existing := &models.User{BaseModel: models.BaseModel{ID: id}, FullName: "Jane"}
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil).Times(2)

	user, err := suite.userService.Update(context.Background(), sessionFor(id), id, &service.UpdateUserRequest{})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Jane", user.FullName)
}

func (suite *UserServiceTestSuite) TestUpdate_SomeoneElse() {
	name := "Intruder"

	_, err := suite.userService.Update(context.Background(), sessionFor(uuid.New()), uuid.New(), &service.UpdateUserRequest{FullName: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdate_Unauthenticated() {
	_, err := suite.userService.Update(context.Background(), nil, uuid.New(), &service.UpdateUserRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthenticated)
}

func (suite *UserServiceTestSuite) TestUpdate_InvalidImage() {
	id := uuid.New()
	image := "not a url"

	_, err := suite.userService.Update(context.Background(), sessionFor(id), id, &service.UpdateUserRequest{Image: &image})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestUpdate_UserMissing() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Update(context.Background(), sessionFor(id), id, &service.UpdateUserRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestUpdate_RepositoryError() {
	id := uuid.New()
	name := "Jane Captain"
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(&models.User{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.userService.Update(context.Background(), sessionFor(id), id, &service.UpdateUserRequest{FullName: &name})

	suite.Require().Error(err)
	assert.Contains(suite.T(), err.Error(), "failed to update user")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
