package handlers

import (
	"net/http"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for the players of an auction
type PlayerHandler struct {
	service service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// ListPlayers handles GET /api/auction/:id/players
// @Summary List the players of an auction
// @Tags players
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Success 200 {object} Response{data=[]models.Player} "Players retrieved successfully"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Router /auction/{id}/players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}

	players, err := h.service.ListByAuction(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Players retrieved successfully", players)
}

// GetPlayer handles GET /api/auction/:id/players/:playerId
// @Summary Get a player of an auction
// @Tags players
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Success 200 {object} Response{data=models.Player} "Player fetched successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /auction/{id}/players/{playerId} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	playerID, ok := pathID(c, "playerId", apperrors.ErrPlayerNotFound)
	if !ok {
		return
	}

	player, err := h.service.GetByID(c.Request.Context(), currentSession(c), auctionID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Player fetched successfully", player)
}

// CreatePlayer handles POST /api/auction/:id/players
// @Summary Create or self-register a player
// @Description The auction owner may allocate the player to a team; anyone may self-register while registration is open
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} Response{data=models.Player} "Player created successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Player registration is closed"
// @Failure 403 {object} ErrorResponse "Player registration is closed"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Router /auction/{id}/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	var req service.CreatePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.service.Create(c.Request.Context(), currentSession(c), auctionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Player created successfully", player)
}

// UpdatePlayer handles PATCH /api/auction/:id/players/:playerId
// @Summary Update a player
// @Description teamId, soldValue and soldUnsoldAt may be sent as null to clear them
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} Response{data=models.Player} "Player updated successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Unauthorized to update this player"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /auction/{id}/players/{playerId} [patch]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	playerID, ok := pathID(c, "playerId", apperrors.ErrPlayerNotFound)
	if !ok {
		return
	}
	var req service.UpdatePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.service.Update(c.Request.Context(), currentSession(c), auctionID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Player updated successfully", player)
}

// DeletePlayer handles DELETE /api/auction/:id/players/:playerId
// @Summary Delete a player
// @Tags players
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Success 200 {object} Response "Player deleted successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Unauthorized to delete this player"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /auction/{id}/players/{playerId} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	playerID, ok := pathID(c, "playerId", apperrors.ErrPlayerNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), currentSession(c), auctionID, playerID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Player deleted successfully", gin.H{"id": playerID})
}
