package service

import (
	"context"
	"errors"
	"fmt"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService provides team-related business logic
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	auctions  repository.AuctionRepositoryInterface
	policy    *auth.Policy
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new TeamService
func NewTeamService(teams repository.TeamRepositoryInterface, auctions repository.AuctionRepositoryInterface, policy *auth.Policy, validator *validator.Validate) *TeamService {
	return &TeamService{
		teams:     teams,
		auctions:  auctions,
		policy:    policy,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team.
// TeamPoints and TeamMaxBid fall back to values derived from the auction.
type CreateTeamRequest struct {
	TeamName         string `json:"teamName" validate:"required,min=2,max=100" example:"Strikers"`
	TeamPoints       *int64 `json:"teamPoints" validate:"omitempty,min=0,max=10000000"`
	TeamMaxBid       *int64 `json:"teamMaxBid" validate:"omitempty,min=0,max=10000000"`
	TeamLogo         string `json:"teamLogo" validate:"omitempty,url"`
	TeamLogoPublicID string `json:"teamLogoPublicId"`
}

// UpdateTeamRequest represents a partial team update
type UpdateTeamRequest struct {
	TeamName            *string `json:"teamName" validate:"omitempty,min=2,max=100"`
	TeamPoints          *int64  `json:"teamPoints" validate:"omitempty,min=0,max=10000000"`
	TeamUsedPoints      *int64  `json:"teamUsedPoints" validate:"omitempty,min=0"`
	TeamMaxBid          *int64  `json:"teamMaxBid" validate:"omitempty,min=0,max=10000000"`
	TeamNumberOfPlayers *int    `json:"teamNumberOfPlayers" validate:"omitempty,min=0"`
	TeamLogo            *string `json:"teamLogo" validate:"omitempty,url"`
	TeamLogoPublicID    *string `json:"teamLogoPublicId"`
}

// ListByAuction returns the teams of an auction with their players and bidders
func (s *TeamService) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Team, error) {
	if _, err := loadAuction(ctx, s.auctions, auctionID); err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetByID returns a team of the auction with its players and bidders
func (s *TeamService) GetByID(ctx context.Context, auctionID, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teams.GetWithRoster(ctx, teamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	if team.AuctionID != auctionID {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

// Create adds a team to an auction owned by the caller
func (s *TeamService) Create(ctx context.Context, actor *auth.Session, auctionID uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	if err := authorize(s.policy, actor, auth.ActionTeamManage); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	auction, err := loadAuction(ctx, s.auctions, auctionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsUser(auction.UserID) {
		return nil, apperrors.ErrNotAuctionOwner
	}

	team := &models.Team{
		TeamName:         req.TeamName,
		TeamPoints:       auction.TeamPoints,
		TeamMaxBid:       auction.DefaultTeamMaxBid(),
		TeamLogo:         req.TeamLogo,
		TeamLogoPublicID: req.TeamLogoPublicID,
		AuctionID:        auction.ID,
	}
	if req.TeamPoints != nil {
		team.TeamPoints = *req.TeamPoints
	}
	if req.TeamMaxBid != nil {
		team.TeamMaxBid = *req.TeamMaxBid
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"auction_id": auction.ID,
		"team_id":    team.ID,
	}).Info("Team created")
	return team, nil
}

// Update applies a partial update to a team of an auction owned by the caller
func (s *TeamService) Update(ctx context.Context, actor *auth.Session, auctionID, teamID uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := authorize(s.policy, actor, auth.ActionTeamManage); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.ownedTeam(ctx, actor, auctionID, teamID, apperrors.ErrTeamUpdateForbidden); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.TeamName != nil {
		updates["team_name"] = *req.TeamName
	}
	if req.TeamPoints != nil {
		updates["team_points"] = *req.TeamPoints
	}
	if req.TeamUsedPoints != nil {
		updates["team_used_points"] = *req.TeamUsedPoints
	}
	if req.TeamMaxBid != nil {
		updates["team_max_bid"] = *req.TeamMaxBid
	}
	if req.TeamNumberOfPlayers != nil {
		updates["team_number_of_players"] = *req.TeamNumberOfPlayers
	}
	if req.TeamLogo != nil {
		updates["team_logo"] = *req.TeamLogo
	}
	if req.TeamLogoPublicID != nil {
		updates["team_logo_public_id"] = *req.TeamLogoPublicID
	}

	if len(updates) > 0 {
		if err := s.teams.Update(ctx, teamID, updates); err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
	}
	return s.GetByID(ctx, auctionID, teamID)
}

// Delete removes a team, releasing its players and deleting its bidders
func (s *TeamService) Delete(ctx context.Context, actor *auth.Session, auctionID, teamID uuid.UUID) error {
	if err := authorize(s.policy, actor, auth.ActionTeamManage); err != nil {
		return err
	}
	if _, err := s.ownedTeam(ctx, actor, auctionID, teamID, apperrors.ErrTeamDeleteForbidden); err != nil {
		return err
	}

	if err := s.teams.Delete(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"auction_id": auctionID,
		"team_id":    teamID,
	}).Info("Team deleted")
	return nil
}

// ownedTeam loads a team of auctionID and checks the caller owns the auction
func (s *TeamService) ownedTeam(ctx context.Context, actor *auth.Session, auctionID, teamID uuid.UUID, forbidden error) (*models.Team, error) {
	auction, err := loadAuction(ctx, s.auctions, auctionID)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	if team.AuctionID != auction.ID {
		return nil, apperrors.ErrTeamNotFound
	}
	if !actor.IsUser(auction.UserID) {
		return nil, forbidden
	}
	return team, nil
}
