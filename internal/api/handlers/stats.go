package handlers

import (
	"net/http"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles auction statistics requests
type StatsHandler struct {
	service service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/stats
// @Summary Count all auctions by status
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=service.AuctionStatsResponse} "Auction stats retrieved successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Global(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction stats retrieved successfully", stats)
}

// GetProfileStats handles GET /api/profile-stats
// @Summary Count the caller's auctions by status
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=service.AuctionStatsResponse} "Auction stats retrieved successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /profile-stats [get]
func (h *StatsHandler) GetProfileStats(c *gin.Context) {
	stats, err := h.service.Profile(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction stats retrieved successfully", stats)
}

// GetAuctionSummary handles GET /api/auction/:id/stats
// @Summary Summarize the progress of one auction
// @Description Team and player counts, points spent and the top three sold players
// @Tags stats
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Success 200 {object} Response{data=service.AuctionSummaryResponse} "Auction summary retrieved successfully"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Router /auction/{id}/stats [get]
func (h *StatsHandler) GetAuctionSummary(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}

	summary, err := h.service.AuctionSummary(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Auction summary retrieved successfully", summary)
}
