package service_test

import (
	"context"
	"testing"
	"time"

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

type PlayerServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPlayerRepo  *mocks.MockPlayerRepositoryInterface
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockAuctionRepo *mocks.MockAuctionRepositoryInterface
	playerService   *service.PlayerService
	owner           *auth.Session
	auction         *models.Auction
}

func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockAuctionRepo = mocks.NewMockAuctionRepositoryInterface(suite.ctrl)
	suite.playerService = service.NewPlayerService(suite.mockPlayerRepo, suite.mockTeamRepo, suite.mockAuctionRepo, testPolicy(), service.NewValidator())
	suite.owner = sessionFor(uuid.New())
	suite.auction = ownedAuction(suite.owner.UserID)
}

func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerServiceTestSuite) player() *models.Player {
	return &models.Player{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PlayerName: "Opening Batter",
		BaseValue:  2000,
		AuctionID:  suite.auction.ID,
	}
}

func (suite *PlayerServiceTestSuite) expectAuction() {
	suite.mockAuctionRepo.EXPECT().GetByID(gomock.Any(), suite.auction.ID).Return(suite.auction, nil)
}

func (suite *PlayerServiceTestSuite) TestListByAuction_IsPublic() {
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().ListByAuction(gomock.Any(), suite.auction.ID).Return([]models.Player{*suite.player()}, nil)

	players, err := suite.playerService.ListByAuction(context.Background(), suite.auction.ID)

	suite.Require().NoError(err)
	assert.Len(suite.T(), players, 1)
}

func (suite *PlayerServiceTestSuite) TestSelfRegistration_WithoutSession() {
	suite.expectAuction()
	teamID := uuid.New()
	sold := int64(99999)
	var created *models.Player
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Player) error {
		created = p
		return nil
	})

	player, err := suite.playerService.Create(context.Background(), nil, suite.auction.ID, &service.CreatePlayerRequest{
		PlayerName: "Walk-in Bowler",
		TeamID:     &teamID,
		SoldValue:  &sold,
	})

	suite.Require().NoError(err)
	assert.Same(suite.T(), created, player)
	assert.Equal(suite.T(), suite.auction.MinimumBid, player.BaseValue)
	assert.Nil(suite.T(), player.TeamID, "self registration cannot pick a team")
	assert.Nil(suite.T(), player.SoldValue)
}

func (suite *PlayerServiceTestSuite) TestSelfRegistration_NonOwnerSession() {
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.playerService.Create(context.Background(), sessionFor(uuid.New()), suite.auction.ID, &service.CreatePlayerRequest{PlayerName: "Guest"})

	assert.NoError(suite.T(), err)
}

func (suite *PlayerServiceTestSuite) TestRegistrationClosed_WithoutSession() {
	suite.auction.PlayerRegistration = false
	suite.expectAuction()

	_, err := suite.playerService.Create(context.Background(), nil, suite.auction.ID, &service.CreatePlayerRequest{PlayerName: "Walk-in"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRegistrationClosed)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *PlayerServiceTestSuite) TestRegistrationClosed_NonOwnerSession() {
	suite.auction.PlayerRegistration = false
	suite.expectAuction()

	_, err := suite.playerService.Create(context.Background(), sessionFor(uuid.New()), suite.auction.ID, &service.CreatePlayerRequest{PlayerName: "Walk-in"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRegistrationDenied)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *PlayerServiceTestSuite) TestRegistrationClosed_OwnerMayStillAdd() {
	suite.auction.PlayerRegistration = false
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	base := int64(5000)

	player, err := suite.playerService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreatePlayerRequest{
		PlayerName: "Star Allrounder",
		BaseValue:  &base,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), base, player.BaseValue)
}

func (suite *PlayerServiceTestSuite) TestOwnerCreate_SoldToTeam() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, AuctionID: suite.auction.ID}
	sold := int64(12000)
	suite.expectAuction()
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	player, err := suite.playerService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreatePlayerRequest{
		PlayerName: "Keeper",
		TeamID:     &team.ID,
		SoldValue:  &sold,
	})

	suite.Require().NoError(err)
	assert.True(suite.T(), player.IsSold())
	assert.NotNil(suite.T(), player.SoldUnsoldAt)
}

func (suite *PlayerServiceTestSuite) TestOwnerCreate_TeamFromAnotherAuction() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, AuctionID: uuid.New()}
	suite.expectAuction()
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	_, err := suite.playerService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreatePlayerRequest{
		PlayerName: "Keeper",
		TeamID:     &team.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotInAuction)
}

func (suite *PlayerServiceTestSuite) TestOwnerCreate_SoldWithoutTeam() {
	sold := int64(12000)
	suite.expectAuction()

	_, err := suite.playerService.Create(context.Background(), suite.owner, suite.auction.ID, &service.CreatePlayerRequest{
		PlayerName: "Keeper",
		SoldValue:  &sold,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSoldWithoutTeam)
}

func (suite *PlayerServiceTestSuite) TestCreate_ValidationError() {
	suite.expectAuction()

	_, err := suite.playerService.Create(context.Background(), nil, suite.auction.ID, &service.CreatePlayerRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PlayerServiceTestSuite) TestGetByID_RequiresSession() {
	_, err := suite.playerService.GetByID(context.Background(), nil, suite.auction.ID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthenticated)
}

func (suite *PlayerServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.playerService.GetByID(context.Background(), suite.owner, suite.auction.ID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

func (suite *PlayerServiceTestSuite) TestUpdate_ClearsNullFields() {
	player := suite.player()
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil).Times(2)
	suite.mockPlayerRepo.EXPECT().Update(gomock.Any(), player.ID, map[string]interface{}{
		"team_id":        nil,
		"sold_value":     nil,
		"sold_unsold_at": nil,
	}).Return(nil)

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		TeamID:       service.Null[uuid.UUID](),
		SoldValue:    service.Null[int64](),
		SoldUnsoldAt: service.Null[time.Time](),
	})

	assert.NoError(suite.T(), err)
}

func (suite *PlayerServiceTestSuite) TestUpdate_AllocatesToTeam() {
	player := suite.player()
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, AuctionID: suite.auction.ID}
	soldAt := time.Date(2025, 4, 12, 19, 0, 0, 0, time.UTC)
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil).Times(2)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockPlayerRepo.EXPECT().Update(gomock.Any(), player.ID, map[string]interface{}{
		"team_id":        team.ID,
		"sold_value":     int64(7000),
		"sold_unsold_at": soldAt,
	}).Return(nil)

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		TeamID:       service.Some(team.ID),
		SoldValue:    service.Some(int64(7000)),
		SoldUnsoldAt: service.Some(soldAt),
	})

	assert.NoError(suite.T(), err)
}

func (suite *PlayerServiceTestSuite) TestUpdate_SoldValueWithoutTeam() {
	player := suite.player()
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil)

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		SoldValue: service.Some(int64(5000)),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSoldWithoutTeam)
}

func (suite *PlayerServiceTestSuite) TestUpdate_SoldValueWhileClearingTeam() {
	player := suite.player()
	teamID := uuid.New()
	player.TeamID = &teamID
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil)

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		TeamID:    service.Null[uuid.UUID](),
		SoldValue: service.Some(int64(5000)),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSoldWithoutTeam)
}

func (suite *PlayerServiceTestSuite) TestUpdate_SoldValueOnAllocatedPlayerStampsTime() {
	player := suite.player()
	teamID := uuid.New()
	player.TeamID = &teamID
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil).Times(2)
	suite.mockPlayerRepo.EXPECT().Update(gomock.Any(), player.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), int64(6000), updates["sold_value"])
			assert.IsType(suite.T(), time.Time{}, updates["sold_unsold_at"])
			assert.NotContains(suite.T(), updates, "team_id")
			return nil
		})

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		SoldValue: service.Some(int64(6000)),
	})

	assert.NoError(suite.T(), err)
}

func (suite *PlayerServiceTestSuite) TestUpdate_ClearingTeamDropsSale() {
	player := suite.player()
	teamID := uuid.New()
	sold := int64(9000)
	soldAt := time.Date(2025, 4, 12, 19, 0, 0, 0, time.UTC)
	player.TeamID, player.SoldValue, player.SoldUnsoldAt = &teamID, &sold, &soldAt
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil).Times(2)
	suite.mockPlayerRepo.EXPECT().Update(gomock.Any(), player.ID, map[string]interface{}{
		"team_id":        nil,
		"sold_value":     nil,
		"sold_unsold_at": nil,
	}).Return(nil)

	_, err := suite.playerService.Update(context.Background(), suite.owner, suite.auction.ID, player.ID, &service.UpdatePlayerRequest{
		TeamID: service.Null[uuid.UUID](),
	})

	assert.NoError(suite.T(), err)
}

func (suite *PlayerServiceTestSuite) TestUpdate_NotOwner() {
	player := suite.player()
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil)
	name := "Renamed"

	_, err := suite.playerService.Update(context.Background(), sessionFor(uuid.New()), suite.auction.ID, player.ID, &service.UpdatePlayerRequest{PlayerName: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerUpdateDenied)
}

func (suite *PlayerServiceTestSuite) TestDelete_Success() {
	player := suite.player()
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil)
	suite.mockPlayerRepo.EXPECT().Delete(gomock.Any(), player.ID).Return(nil)

	assert.NoError(suite.T(), suite.playerService.Delete(context.Background(), suite.owner, suite.auction.ID, player.ID))
}

func (suite *PlayerServiceTestSuite) TestDelete_NotOwner() {
	player := suite.player()
	suite.expectAuction()
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), player.ID).Return(player, nil)

	err := suite.playerService.Delete(context.Background(), sessionFor(uuid.New()), suite.auction.ID, player.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerDeleteDenied)
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
