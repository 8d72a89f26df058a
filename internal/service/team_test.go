package service_test

import (
	"context"
	"testing"

	"cricauction-backend/internal/auth"
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

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockAuctionRepo *mocks.MockAuctionRepositoryInterface
	teamService     *service.TeamService
	owner           *auth.Session
	auction         *models.Auction
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockAuctionRepo = mocks.NewMockAuctionRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockAuctionRepo, testPolicy(), service.NewValidator())
	suite.owner = sessionFor(uuid.New())
	suite.auction = ownedAuction(suite.owner.UserID)
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) team() *models.Team {
	return &models.Team{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamName:   "Strikers",
		TeamPoints: 100000,
		TeamMaxBid: 80000,
		AuctionID:  suite.auction.ID,
	}
}

func (suite *TeamServiceTestSuite) TestCreate_DerivesMaxBidFromAuction() {
	// 100000 - 2000 * (11 - 1)
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	team, err := suite.teamService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreateTeamRequest{TeamName: "Strikers"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(80000), team.TeamMaxBid)
	assert.Equal(suite.T(), int64(100000), team.TeamPoints)
	assert.Equal(suite.T(), int64(0), team.TeamUsedPoints)
	assert.Equal(suite.T(), suite.auction.ID, team.AuctionID)
}

func (suite *TeamServiceTestSuite) TestCreate_MaxBidFormulaHoldsForOtherRules() {
	suite.auction.TeamPoints = 50000
	suite.auction.MinimumBid = 1500
	suite.auction.PlayerPerTeam = 15
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	team, err := suite.teamService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreateTeamRequest{TeamName: "Chargers"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(50000-1500*14), team.TeamMaxBid)
}

func (suite *TeamServiceTestSuite) TestCreate_ExplicitValuesWin() {
	points, maxBid := int64(90000), int64(60000)
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	team, err := suite.teamService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreateTeamRequest{
		TeamName:   "Titans",
		TeamPoints: &points,
		TeamMaxBid: &maxBid,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), points, team.TeamPoints)
	assert.Equal(suite.T(), maxBid, team.TeamMaxBid)
}

func (suite *TeamServiceTestSuite) TestCreate_NotOwner() {
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)

	_, err := suite.teamService.Create(context.Background(), sessionFor(uuid.New()), suite.auction.ID, &service.CreateTeamRequest{TeamName: "Strikers"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuctionOwner)
}

func (suite *TeamServiceTestSuite) TestCreate_AuctionNotFound() {
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.teamService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreateTeamRequest{TeamName: "Strikers"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAuctionNotFound)
}

func (suite *TeamServiceTestSuite) TestCreate_Unauthenticated() {
	_, err := suite.teamService.Create(context.Background(), nil, suite.auction.ID, &service.CreateTeamRequest{TeamName: "Strikers"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthenticated)
}

func (suite *TeamServiceTestSuite) TestListByAuction() {
	teams := []models.Team{*suite.team(), *suite.team()}
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().ListByAuction(gomock.Any(), suite.auction.ID).Return(teams, nil)

	result, err := suite.teamService.ListByAuction(context.Background(), suite.auction.ID)

	suite.Require().NoError(err)
	assert.Len(suite.T(), result, 2)
}

func (suite *TeamServiceTestSuite) TestGetByID_WrongAuction() {
	team := suite.team()
	suite.mockTeamRepo.EXPECT().GetWithRoster(gomock.Any(), team.ID).Return(team, nil)

	_, err := suite.teamService.GetByID(context.Background(), uuid.New(), team.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestUpdate_Success() {
	team := suite.team()
	name := "Super Strikers"
	updated := *team
	updated.TeamName = name

	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().Update(gomock.Any(), team.ID, map[string]interface{}{"team_name": name}).Return(nil)
	suite.mockTeamRepo.EXPECT().GetWithRoster(gomock.Any(), team.ID).Return(&updated, nil)

	result, err := suite.teamService.Update(context.Background(), suite.owner, suite.auction.ID, team.ID, &service.UpdateTeamRequest{TeamName: &name})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), name, result.TeamName)
}

func (suite *TeamServiceTestSuite) TestUpdate_NotOwner() {
	team := suite.team()
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	name := "Stolen"

	_, err := suite.teamService.Update(context.Background(), sessionFor(uuid.New()), suite.auction.ID, team.ID, &service.UpdateTeamRequest{TeamName: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamUpdateForbidden)
	assert.Equal(suite.T(), "Unauthorized to update this team", err.Error())
}

func (suite *TeamServiceTestSuite) TestDelete_Success() {
	team := suite.team()
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().Delete(gomock.Any(), team.ID).Return(nil)

	assert.NoError(suite.T(), suite.teamService.Delete(context.Background(), suite.owner, suite.auction.ID, team.ID))
}

func (suite *TeamServiceTestSuite) TestDelete_NotOwner() {
	team := suite.team()
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Delete(context.Background(), sessionFor(uuid.New()), suite.auction.ID, team.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamDeleteForbidden)
}

func (suite *TeamServiceTestSuite) TestDelete_TeamFromAnotherAuction() {
	team := suite.team()
	team.AuctionID = uuid.New()
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Delete(context.Background(), suite.owner, suite.auction.ID, team.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
