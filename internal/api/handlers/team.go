package handlers

import (
	"net/http"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for the teams of an auction
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// ListTeams handles GET /api/auction/:id/teams
// @Summary List the teams of an auction
// @Description Teams are returned newest first with their players and bidders
// @Tags teams
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Success 200 {object} Response{data=[]models.Team} "Teams retrieved successfully"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Router /auction/{id}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}

	teams, err := h.service.ListByAuction(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// GetTeam handles GET /api/auction/:id/teams/:teamId
// @Summary Get a team of an auction
// @Tags teams
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} Response{data=models.Team} "Team retrieved successfully"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /auction/{id}/teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	team, err := h.service.GetByID(c.Request.Context(), auctionID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Team retrieved successfully", team)
}

// CreateTeam handles POST /api/auction/:id/teams
// @Summary Create a team
// @Description Team points default to the auction's points and the max bid to points - minimumBid * (playerPerTeam - 1)
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} Response{data=models.Team} "Team created successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Auction not found"
// @Security BearerAuth
// @Router /auction/{id}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.service.Create(c.Request.Context(), currentSession(c), auctionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Team created successfully", team)
}

// UpdateTeam handles PATCH /api/auction/:id/teams/:teamId
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} Response{data=models.Team} "Team updated successfully"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Unauthorized to update this team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /auction/{id}/teams/{teamId} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamNotFound)
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.service.Update(c.Request.Context(), currentSession(c), auctionID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam handles DELETE /api/auction/:id/teams/:teamId
// @Summary Delete a team
// @Description Releases the team's players and deletes its bidders in one transaction
// @Tags teams
// @Produce json
// @Param id path string true "Auction ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} Response "Team deleted successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Unauthorized to delete this team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /auction/{id}/teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	auctionID, ok := pathID(c, "id", apperrors.ErrAuctionNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), currentSession(c), auctionID, teamID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Team deleted successfully", gin.H{"id": teamID})
}
