package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService provides player-related business logic
type PlayerService struct {
	players   repository.PlayerRepositoryInterface
	teams     repository.TeamRepositoryInterface
	auctions  repository.AuctionRepositoryInterface
	policy    *auth.Policy
	validator *validator.Validate
	now       func() time.Time
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new PlayerService
func NewPlayerService(players repository.PlayerRepositoryInterface, teams repository.TeamRepositoryInterface, auctions repository.AuctionRepositoryInterface, policy *auth.Policy, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		players:   players,
		teams:     teams,
		auctions:  auctions,
		policy:    policy,
		validator: validator,
		now:       time.Now,
	}
}

// CreatePlayerRequest represents the request to create a player.
// Self-registered players only keep PlayerName.
type CreatePlayerRequest struct {
	PlayerName string     `json:"playerName" validate:"required,min=2,max=100" example:"Rohit Kumar"`
	BaseValue  *int64     `json:"baseValue" validate:"omitempty,min=0,max=10000000"`
	TeamID     *uuid.UUID `json:"teamId"`
	SoldValue  *int64     `json:"soldValue" validate:"omitempty,min=0,max=10000000"`
}

// UpdatePlayerRequest represents a partial player update. TeamID, SoldValue and
// SoldUnsoldAt may be sent as null to clear them.
type UpdatePlayerRequest struct {
	PlayerName   *string             `json:"playerName" validate:"omitempty,min=2,max=100"`
	BaseValue    *int64              `json:"baseValue" validate:"omitempty,min=0,max=10000000"`
	TeamID       Nullable[uuid.UUID] `json:"teamId" swaggertype:"string"`
	SoldValue    Nullable[int64]     `json:"soldValue" swaggertype:"integer"`
	SoldUnsoldAt Nullable[time.Time] `json:"soldUnsoldAt" swaggertype:"string"`
}

// ListByAuction returns the players of an auction; anyone knowing the auction id may call it
func (s *PlayerService) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Player, error) {
	if _, err := loadAuction(ctx, s.auctions, auctionID); err != nil {
		return nil, err
	}

	players, err := s.players.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetByID returns a player of an auction to a signed-in caller
func (s *PlayerService) GetByID(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID) (*models.Player, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionRead); err != nil {
		return nil, err
	}
	return s.playerOf(ctx, auctionID, playerID)
}

// Create adds a player. The auction owner may allocate the player directly;
// anyone else may only self-register while the auction accepts registrations.
func (s *PlayerService) Create(ctx context.Context, actor *auth.Session, auctionID uuid.UUID, req *CreatePlayerRequest) (*models.Player, error) {
	auction, err := loadAuction(ctx, s.auctions, auctionID)
	if err != nil {
		return nil, err
	}

	owner := actor != nil && actor.IsUser(auction.UserID) && s.policy.Allowed(actor.Role, auth.ActionPlayerManage)
	switch {
	case owner:
	case auction.PlayerRegistration:
	case actor == nil:
		return nil, apperrors.ErrRegistrationClosed
	default:
		return nil, apperrors.ErrRegistrationDenied
	}

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	player := &models.Player{
		PlayerName: req.PlayerName,
		BaseValue:  auction.MinimumBid,
		AuctionID:  auction.ID,
	}

	if owner {
		if req.BaseValue != nil {
			player.BaseValue = *req.BaseValue
		}
		if req.SoldValue != nil && req.TeamID == nil {
			return nil, apperrors.ErrSoldWithoutTeam
		}
		if req.TeamID != nil {
			if err := s.checkTeam(ctx, auction.ID, *req.TeamID); err != nil {
				return nil, err
			}
			player.TeamID = req.TeamID
			if req.SoldValue != nil {
				soldAt := s.now()
				player.SoldValue = req.SoldValue
				player.SoldUnsoldAt = &soldAt
			}
		}
	}

	if err := s.players.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"auction_id":      auction.ID,
		"player_id":       player.ID,
		"self_registered": !owner,
	}).Info("Player created")
	return player, nil
}

// Update applies a partial update to a player of an auction owned by the caller
func (s *PlayerService) Update(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error) {
	if err := authorize(s.policy, actor, auth.ActionPlayerManage); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	player, err := s.ownedPlayer(ctx, actor, auctionID, playerID, apperrors.ErrPlayerUpdateDenied)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.PlayerName != nil {
		updates["player_name"] = *req.PlayerName
	}
	if req.BaseValue != nil {
		updates["base_value"] = *req.BaseValue
	}

	team := player.TeamID
	if req.TeamID.Set {
		if req.TeamID.Value != nil {
			if err := s.checkTeam(ctx, auctionID, *req.TeamID.Value); err != nil {
				return nil, err
			}
		}
		team = req.TeamID.Value
		updates["team_id"] = req.TeamID.column()
	}

	selling := req.SoldValue.Set && req.SoldValue.Value != nil
	if selling {
		if *req.SoldValue.Value < 0 {
			return nil, apperrors.NewValidationError("soldValue", "must be at least 0")
		}
		if team == nil {
			return nil, apperrors.ErrSoldWithoutTeam
		}
	}
	if req.SoldValue.Set {
		updates["sold_value"] = req.SoldValue.column()
	}
	if req.SoldUnsoldAt.Set {
		updates["sold_unsold_at"] = req.SoldUnsoldAt.column()
	}
	if selling && (!req.SoldUnsoldAt.Set || req.SoldUnsoldAt.Value == nil) {
		updates["sold_unsold_at"] = s.now()
	}

	// a player without a team carries no sale
	if req.TeamID.Set && team == nil {
		updates["sold_value"] = nil
		updates["sold_unsold_at"] = nil
	}

	if len(updates) > 0 {
		if err := s.players.Update(ctx, playerID, updates); err != nil {
			return nil, fmt.Errorf("failed to update player: %w", err)
		}
	}
	return s.playerOf(ctx, auctionID, playerID)
}

// Delete removes a player of an auction owned by the caller
func (s *PlayerService) Delete(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID) error {
	if err := authorize(s.policy, actor, auth.ActionPlayerManage); err != nil {
		return err
	}
	if _, err := s.ownedPlayer(ctx, actor, auctionID, playerID, apperrors.ErrPlayerDeleteDenied); err != nil {
		return err
	}

	if err := s.players.Delete(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player: %w", err)
	}

	logger.WithContext(ctx).WithField("player_id", playerID).Info("Player deleted")
	return nil
}

func (s *PlayerService) playerOf(ctx context.Context, auctionID, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPlayerNotFound, "player")
	}
	if player.AuctionID != auctionID {
		return nil, apperrors.ErrPlayerNotFound
	}
	return player, nil
}

func (s *PlayerService) ownedPlayer(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID, forbidden error) (*models.Player, error) {
	auction, err := loadAuction(ctx, s.auctions, auctionID)
	if err != nil {
		return nil, err
	}
	player, err := s.playerOf(ctx, auction.ID, playerID)
	if err != nil {
		return nil, err
	}
	if !actor.IsUser(auction.UserID) {
		return nil, forbidden
	}
	return player, nil
}

// checkTeam ensures teamID names a team of auctionID
func (s *PlayerService) checkTeam(ctx context.Context, auctionID, teamID uuid.UUID) error {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotInAuction
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team.AuctionID != auctionID {
		return apperrors.ErrTeamNotInAuction
	}
	return nil
}
