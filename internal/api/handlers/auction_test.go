package handlers_test

import (
	"errors"
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

type AuctionHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAuctionService *mocks.MockAuctionServiceInterface
	httpSuite          *testutils.HTTPTestSuite
	auth               *signedIn
}

func (suite *AuctionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAuctionService = mocks.NewMockAuctionServiceInterface(suite.ctrl)
	suite.auth = &signedIn{}
	suite.httpSuite = newHTTPSuite(suite.auth)

	handler := handlers.NewAuctionHandler(suite.mockAuctionService)
	api := suite.httpSuite.Router.Group("/api")
	api.GET("/auction", handler.ListAuctions)
	api.POST("/auction", handler.CreateAuction)
	api.GET("/auction/user/:userId", handler.ListUserAuctions)
	api.GET("/auction/code/:code", handler.GetAuctionByCode)
	api.GET("/auction/:id", handler.GetAuction)
	api.PATCH("/auction/:id", handler.UpdateAuction)
	api.DELETE("/auction/:id", handler.DeleteAuction)
}

func (suite *AuctionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuctionHandlerTestSuite) auction(owner uuid.UUID) *models.Auction {
	return &models.Auction{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		AuctionCode:   "12345678",
		AuctionName:   "Premier League Auction",
		AuctionDate:   "2025-04-20",
		AuctionTime:   "18:30",
		TeamPoints:    100000,
		MinimumBid:    2000,
		BidIncreaseBy: 500,
		PlayerPerTeam: 11,
		Venue:         "Community Ground",
		Status:        models.AuctionStatusUpcoming,
		UserID:        owner,
	}
}

func (suite *AuctionHandlerTestSuite) TestListAuctions() {
	session := suite.auth.as(uuid.New())
	auctions := []models.Auction{*suite.auction(session.UserID), *suite.auction(uuid.New())}
	suite.mockAuctionService.EXPECT().List(gomock.Any(), session).Return(auctions, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auction", nil)

	var data []models.Auction
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Auctions retrieved successfully", &data)
	assert.Len(suite.T(), data, 2)
	assert.Equal(suite.T(), auctions[0].ID, data[0].ID)
}

func (suite *AuctionHandlerTestSuite) TestListAuctionsWithoutSession() {
	suite.mockAuctionService.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, apperrors.ErrUnauthenticated)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auction", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Unauthorized")
}

func (suite *AuctionHandlerTestSuite) TestListUserAuctions() {
	suite.T().Run("Own auctions", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		suite.mockAuctionService.EXPECT().ListByUser(gomock.Any(), session, session.UserID).Return([]models.Auction{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/auction/user/%s", session.UserID), nil)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Auctions retrieved successfully", nil)
	})

	suite.T().Run("Someone else's auctions", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		other := uuid.New()
		suite.mockAuctionService.EXPECT().ListByUser(gomock.Any(), session, other).Return(nil, apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/auction/user/%s", other), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Forbidden")
	})
}

func (suite *AuctionHandlerTestSuite) TestCreateAuction() {
	requestBody := map[string]interface{}{
		"auctionName":        "Premier League Auction",
		"auctionDate":        "2025-04-20",
		"auctionTime":        "18:30",
		"teamPoints":         100000,
		"minimumBid":         2000,
		"bidIncreaseBy":      500,
		"playerPerTeam":      11,
		"venue":              "Community Ground",
		"playerRegistration": true,
	}

	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		created := suite.auction(session.UserID)
		suite.mockAuctionService.EXPECT().
			Create(gomock.Any(), session, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ interface{}, req *service.CreateAuctionRequest) (*models.Auction, error) {
				assert.Equal(t, "Premier League Auction", req.AuctionName)
				assert.Equal(t, 11, req.PlayerPerTeam)
				assert.True(t, req.PlayerRegistration)
				return created, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auction", requestBody)

		var data models.Auction
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated, "Auction created successfully", &data)
		assert.Equal(t, created.AuctionCode, data.AuctionCode)
		assert.Equal(t, session.UserID, data.UserID)
	})

	suite.T().Run("Code collision", func(t *testing.T) {
		suite.auth.as(uuid.New())
		suite.mockAuctionService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrAuctionCodeConflict)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auction", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Please try again")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.auth.as(uuid.New())
		suite.mockAuctionService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("auctionName", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auction", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "auctionName: is required")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		suite.auth.as(uuid.New())

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auction", `{"auctionName":`)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	suite.T().Run("Unexpected error", func(t *testing.T) {
		suite.auth.as(uuid.New())
		suite.mockAuctionService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("failed to create auction: connection refused"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auction", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "connection refused")
	})
}

func (suite *AuctionHandlerTestSuite) TestGetAuction() {
	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		auction := suite.auction(session.UserID)
		suite.mockAuctionService.EXPECT().GetByID(gomock.Any(), session, auction.ID).Return(auction, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/auction/%s", auction.ID), nil)

		var data models.Auction
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Auction retrieved successfully", &data)
		assert.Equal(t, auction.ID, data.ID)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockAuctionService.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, apperrors.ErrAuctionNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/auction/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Auction not found")
	})

	suite.T().Run("Malformed ID", func(t *testing.T) {
		suite.auth.as(uuid.New())

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auction/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Auction not found")
	})

	suite.T().Run("Not the owner", func(t *testing.T) {
		suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockAuctionService.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, apperrors.ErrNotAuctionOwner)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/auction/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Forbidden")
	})
}

func (suite *AuctionHandlerTestSuite) TestGetAuctionByCode() {
	suite.auth.signOut()
	public := &service.PublicAuctionResponse{
		ID:                 uuid.New(),
		AuctionCode:        "54321987",
		AuctionName:        "Village Cup",
		PlayerRegistration: true,
		Status:             models.AuctionStatusUpcoming,
	}
	suite.mockAuctionService.EXPECT().GetByCode(gomock.Any(), "54321987").Return(public, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auction/code/54321987", nil)

	var data service.PublicAuctionResponse
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Auction retrieved successfully", &data)
	assert.Equal(suite.T(), "Village Cup", data.AuctionName)
	assert.True(suite.T(), data.PlayerRegistration)
}

func (suite *AuctionHandlerTestSuite) TestUpdateAuction() {
	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		auction := suite.auction(session.UserID)
		auction.Venue = "Main Stadium"
		suite.mockAuctionService.EXPECT().
			Update(gomock.Any(), session, auction.ID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ interface{}, _ uuid.UUID, req *service.UpdateAuctionRequest) (*models.Auction, error) {
				if assert.NotNil(t, req.Venue) {
					assert.Equal(t, "Main Stadium", *req.Venue)
				}
				assert.Nil(t, req.AuctionName)
				return auction, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/auction/%s", auction.ID), map[string]interface{}{"venue": "Main Stadium"})

		var data models.Auction
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Auction updated successfully", &data)
		assert.Equal(t, "Main Stadium", data.Venue)
	})

	suite.T().Run("Not the owner", func(t *testing.T) {
		suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockAuctionService.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrNotAuctionOwner)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, fmt.Sprintf("/api/auction/%s", id), map[string]interface{}{"venue": "Elsewhere"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Forbidden")
	})
}

func (suite *AuctionHandlerTestSuite) TestDeleteAuction() {
	suite.T().Run("Success", func(t *testing.T) {
		session := suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockAuctionService.EXPECT().Delete(gomock.Any(), session, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/auction/%s", id), nil)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, "Auction deleted successfully", nil)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.auth.as(uuid.New())
		id := uuid.New()
		suite.mockAuctionService.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(apperrors.ErrAuctionNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/auction/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Auction not found")
	})
}

func TestAuctionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}
