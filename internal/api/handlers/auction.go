package handlers

import (
	"net/http"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuctionHandler handles HTTP requests for auctions
type AuctionHandler struct {
	service service.AuctionServiceInterface
}

// NewAuctionHandler creates a new auction handler
func NewAuctionHandler(service service.AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctions handles GET /api/auction and GET /api/auctions
// @Summary List auctions
// @Description List every auction with its status derived from the schedule
// @Tags auctions
// @Produce json
// @Success 200 {object} Response{data=[]models.Auction} "Auctions retrieved successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auction [get]
func (h *AuctionHandler) ListAuctions(c *gin.Context) {
	auctions, err := h.service.List(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auctions retrieved successfully", auctions)
}

// ListUserAuctions handles GET /api/auction/user/:userId
// @Summary List a user's auctions
// @Description List the auctions created by the signed-in user
// @Tags auctions
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} Response{data=[]models.Auction} "Auctions retrieved successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /auction/user/{userId} [get]
func (h *AuctionHandler) ListUserAuctions(c *gin.Context) {
	userID, ok := pathID(c, "userId", apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	auctions, err := h.service.ListByUser(c.Request.Context(), currentSession(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auctions retrieved successfully", auctions)
}

// GetAuction handles GET /api/auction/:id
// @Summary Get auction by ID
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Success 200 {object} Response{data=models.Auction} "Auction retrieved successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Security BearerAuth
// @Router /auction/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}

	auction, err := h.service.GetByID(c.Request.Context(), currentSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction retrieved successfully", auction)
}

// GetAuctionByCode handles GET /api/auction/code/:code
// @Summary Get the public view of an auction by its join code
// @Tags auctions
// @Produce json
// @Param code path string true "8-digit auction code"
// @Success 200 {object} Response{data=service.PublicAuctionResponse} "Auction retrieved successfully"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Router /auction/code/{code} [get]
func (h *AuctionHandler) GetAuctionByCode(c *gin.Context) {
	auction, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction retrieved successfully", auction)
}

// CreateAuction handles POST /api/auction
// @Summary Create an auction
// @Description Create an auction owned by the caller; a unique 8-digit code is generated
// @Tags auctions
// @Accept json
// @Produce json
// @Param auction body service.CreateAuctionRequest true "Auction data"
// @Success 201 {object} Response{data=models.Auction} "Auction created successfully"
// @Failure 400 {object} ErrorResponse "Validation failed or code collision"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auction [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req service.CreateAuctionRequest
	if !bindJSON(c, &req) {
		return
	}

	auction, err := h.service.Create(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Auction created successfully", auction)
}

// UpdateAuction handles PATCH /api/auction/:id
// @Summary Update an auction
// @Description Apply a partial update to an auction owned by the caller
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param auction body service.UpdateAuctionRequest true "Fields to change"
// @Success 200 {object} Response{data=models.Auction} "Auction updated successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Security BearerAuth
// @Router /auction/{id} [patch]
func (h *AuctionHandler) UpdateAuction(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	var req service.UpdateAuctionRequest
	if !bindJSON(c, &req) {
		return
	}

	auction, err := h.service.Update(c.Request.Context(), currentSession(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction updated successfully", auction)
}

// DeleteAuction handles DELETE /api/auction/:id
// @Summary Delete an auction
// @Description Delete an auction with its teams, players and bidders
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Success 200 {object} Response "Auction deleted successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Security BearerAuth
// @Router /auction/{id} [delete]
func (h *AuctionHandler) DeleteAuction(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), currentSession(c), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction deleted successfully", gin.H{"id": id})
}
