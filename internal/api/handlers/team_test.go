package handlers_test

import (
	"fmt"
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

type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamService *mocks.MockTeamServiceInterface
	httpSuite       *testutils.HTTPTestSuite
	auth            *signedIn
	auctionID       uuid.UUID
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.auth = &signedIn{}
	suite.httpSuite = newHTTPSuite(suite.auth)
	suite.auctionID = uuid.New()

	handler := handlers.NewTeamHandler(suite.mockTeamService)
	teams := suite.httpSuite.Router.Group("/api/auction/:id/teams")
	{
		teams.GET("", handler.ListTeams)
		teams.POST("", handler.CreateTeam)
		teams.GET("/:teamId", handler.GetTeam)
		teams.PATCH("/:teamId", handler.UpdateTeam)
		teams.DELETE("/:teamId", handler.DeleteTeam)
	}
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) url(parts ...interface{}) string {
	u := fmt.Sprintf("/api/auction/%s/teams", suite.auctionID)
	for _, p := range parts {
		u += fmt.Sprintf("/%v", p)
	}
	return u
}

func (suite *TeamHandlerTestSuite) TestListTeamsIsPublic() {
	suite.auth.signOut()
	team := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Strikers", AuctionID: suite.auctionID}
	suite.mockTeamService.EXPECT().ListByAuction(gomock.Any(), suite.auctionID).Return([]models.Team{team}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(), nil)

	var data []models.Team
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Teams retrieved successfully", &data)
	assert.Equal(suite.T(), "Strikers", data[0].TeamName)
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Strikers", AuctionID: suite.auctionID}
		suite.mockTeamService.EXPECT().GetByID(gomock.Any(), suite.auctionID, team.ID).Return(team, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(team.ID), nil)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Team retrieved successfully", nil)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockTeamService.EXPECT().GetByID(gomock.Any(), suite.auctionID, id).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})

	suite.T().Run("Malformed team ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("abc"), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		created := &models.Team{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			TeamName:   "Strikers",
			TeamPoints: 100000,
			TeamMaxBid: 80000,
			AuctionID:  suite.auctionID,
		}
		suite.mockTeamService.EXPECT().
			Create(gomock.Any(), session, suite.auctionID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ interface{}, _ uuid.UUID, req *service.CreateTeamRequest) (*models.Team, error) {
				assert.Equal(t, "Strikers", req.TeamName)
				assert.Nil(t, req.TeamMaxBid)
				return created, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(), map[string]interface{}{"teamName": "Strikers"})

		var data models.Team
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated, "Team created successfully", &data)
		assert.Equal(t, int64(80000), data.TeamMaxBid)
	})

	suite.T().Run("Not the owner", func(t *testing.T) {
		suite.auth.as(uuid.New())
		suite.mockTeamService.EXPECT().Create(gomock.Any(), gomock.Any(), suite.auctionID, gomock.Any()).Return(nil, apperrors.ErrNotAuctionOwner)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(), map[string]interface{}{"teamName": "Strikers"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Forbidden")
	})
}

func (suite *TeamHandlerTestSuite) TestUpdateTeamForbidden() {
	suite.auth.as(uuid.New())
	id := uuid.New()
	suite.mockTeamService.EXPECT().Update(gomock.Any(), gomock.Any(), suite.auctionID, id, gomock.Any()).Return(nil, apperrors.ErrTeamUpdateForbidden)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, suite.url(id), map[string]interface{}{"teamName": "Renamed"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Unauthorized to update this team")
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockTeamService.EXPECT().Delete(gomock.Any(), session, suite.auctionID, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url(id), nil)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Team deleted successfully", nil)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockTeamService.EXPECT().Delete(gomock.Any(), gomock.Any(), suite.auctionID, id).Return(apperrors.ErrTeamDeleteForbidden)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url(id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Unauthorized to delete this team")
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
