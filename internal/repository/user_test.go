package repository

import (
	"context"
	"testing"

	"cricauction-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *UserRepository
	factories *testutils.FactorySet
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewUserRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()
	user.ID = uuid.Nil

	err := suite.repo.Create(suite.ctx, user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests that email is unique
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@example.com"))
	suite.Error(err)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("captain@example.com")
	suite.NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, "captain@example.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail(suite.ctx, "nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(user)
}

// TestUpdate tests a partial profile update
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(suite.ctx, user))

	err := suite.repo.Update(suite.ctx, user.ID, map[string]interface{}{"full_name": "New Name"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal("New Name", found.FullName)
	suite.Equal(user.Email, found.Email)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
