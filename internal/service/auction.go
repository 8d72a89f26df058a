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

// codeAttempts is how many generated codes are tried before giving up
const codeAttempts = 2

// AuctionService provides auction-related business logic
type AuctionService struct {
	repo      repository.AuctionRepositoryInterface
	policy    *auth.Policy
	schedule  *Schedule
	validator *validator.Validate
	newCode   CodeGenerator
}

// Ensure AuctionService implements AuctionServiceInterface
var _ AuctionServiceInterface = (*AuctionService)(nil)

// NewAuctionService creates a new AuctionService
func NewAuctionService(repo repository.AuctionRepositoryInterface, policy *auth.Policy, schedule *Schedule, validator *validator.Validate) *AuctionService {
	return &AuctionService{
		repo:      repo,
		policy:    policy,
		schedule:  schedule,
		validator: validator,
		newCode:   RandomAuctionCode,
	}
}

// SetCodeGenerator replaces the auction code source
func (s *AuctionService) SetCodeGenerator(gen CodeGenerator) {
	s.newCode = gen
}

// CreateAuctionRequest represents the request to create an auction
type CreateAuctionRequest struct {
	AuctionName         string `json:"auctionName" validate:"required,min=3,max=100" example:"Premier League 2025"`
	AuctionDate         string `json:"auctionDate" validate:"required" example:"2025-04-12"`
	AuctionTime         string `json:"auctionTime" validate:"required,datetime=15:04" example:"18:30"`
	TeamPoints          int64  `json:"teamPoints" validate:"min=0,max=10000000" example:"100000"`
	MinimumBid          int64  `json:"minimumBid" validate:"min=100,max=10000000" example:"2000"`
	BidIncreaseBy       int64  `json:"bidIncreaseBy" validate:"min=100,max=10000000" example:"500"`
	PlayerPerTeam       int    `json:"playerPerTeam" validate:"min=5,max=25" example:"11"`
	Venue               string `json:"venue" validate:"required,min=3,max=200" example:"Community Ground"`
	PlayerRegistration  bool   `json:"playerRegistration" example:"true"`
	AuctionLogo         string `json:"auctionLogo" validate:"omitempty,url"`
	AuctionLogoPublicID string `json:"auctionLogoPublicId"`
}

// UpdateAuctionRequest represents a partial auction update; status is derived and cannot be set
type UpdateAuctionRequest struct {
	AuctionName         *string `json:"auctionName" validate:"omitempty,min=3,max=100"`
	AuctionDate         *string `json:"auctionDate"`
	AuctionTime         *string `json:"auctionTime" validate:"omitempty,datetime=15:04"`
	TeamPoints          *int64  `json:"teamPoints" validate:"omitempty,min=0,max=10000000"`
	MinimumBid          *int64  `json:"minimumBid" validate:"omitempty,min=100,max=10000000"`
	BidIncreaseBy       *int64  `json:"bidIncreaseBy" validate:"omitempty,min=100,max=10000000"`
	PlayerPerTeam       *int    `json:"playerPerTeam" validate:"omitempty,min=5,max=25"`
	Venue               *string `json:"venue" validate:"omitempty,min=3,max=200"`
	PlayerRegistration  *bool   `json:"playerRegistration"`
	AuctionLogo         *string `json:"auctionLogo" validate:"omitempty,url"`
	AuctionLogoPublicID *string `json:"auctionLogoPublicId"`
}

// PublicAuctionResponse is the part of an auction shown on the public join link
type PublicAuctionResponse struct {
	ID                 uuid.UUID            `json:"id"`
	AuctionCode        string               `json:"auctionCode"`
	AuctionName        string               `json:"auctionName"`
	AuctionDate        string               `json:"auctionDate"`
	AuctionTime        string               `json:"auctionTime"`
	Venue              string               `json:"venue"`
	MinimumBid         int64                `json:"minimumBid"`
	AuctionLogo        string               `json:"auctionLogo"`
	PlayerRegistration bool                 `json:"playerRegistration"`
	Status             models.AuctionStatus `json:"status"`
}

// List returns every auction, newest first
func (s *AuctionService) List(ctx context.Context, actor *auth.Session) ([]models.Auction, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionRead); err != nil {
		return nil, err
	}

	auctions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	s.refreshStatuses(ctx, auctions)
	return auctions, nil
}

// ListByUser returns the auctions owned by userID, which must be the caller
func (s *AuctionService) ListByUser(ctx context.Context, actor *auth.Session, userID uuid.UUID) ([]models.Auction, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionRead); err != nil {
		return nil, err
	}
	if !actor.IsUser(userID) {
		return nil, apperrors.ErrForbidden
	}

	auctions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	s.refreshStatuses(ctx, auctions)
	return auctions, nil
}

// GetByID returns an auction owned by the caller
func (s *AuctionService) GetByID(ctx context.Context, actor *auth.Session, id uuid.UUID) (*models.Auction, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionRead); err != nil {
		return nil, err
	}

	auction, err := loadAuction(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsUser(auction.UserID) {
		return nil, apperrors.ErrNotAuctionOwner
	}

	s.refreshStatus(ctx, auction)
	return auction, nil
}

// GetByCode returns the public view of the auction behind a registration code
func (s *AuctionService) GetByCode(ctx context.Context, code string) (*PublicAuctionResponse, error) {
	auction, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAuctionNotFound, "auction")
	}
	s.refreshStatus(ctx, auction)

	return &PublicAuctionResponse{
		ID:                 auction.ID,
		AuctionCode:        auction.AuctionCode,
		AuctionName:        auction.AuctionName,
		AuctionDate:        auction.AuctionDate,
		AuctionTime:        auction.AuctionTime,
		Venue:              auction.Venue,
		MinimumBid:         auction.MinimumBid,
		AuctionLogo:        auction.AuctionLogo,
		PlayerRegistration: auction.PlayerRegistration,
		Status:             auction.Status,
	}, nil
}

// Create creates an auction owned by the caller with a freshly generated code
func (s *AuctionService) Create(ctx context.Context, actor *auth.Session, req *CreateAuctionRequest) (*models.Auction, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionCreate); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	date, err := NormalizeAuctionDate(req.AuctionDate, s.schedule.Location)
	if err != nil {
		return nil, err
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	auction := &models.Auction{
		AuctionCode:         code,
		AuctionName:         req.AuctionName,
		AuctionDate:         date,
		AuctionTime:         req.AuctionTime,
		TeamPoints:          req.TeamPoints,
		MinimumBid:          req.MinimumBid,
		BidIncreaseBy:       req.BidIncreaseBy,
		PlayerPerTeam:       req.PlayerPerTeam,
		Venue:               req.Venue,
		Status:              s.schedule.Resolve(date, req.AuctionTime),
		PlayerRegistration:  req.PlayerRegistration,
		AuctionLogo:         req.AuctionLogo,
		AuctionLogoPublicID: req.AuctionLogoPublicID,
		UserID:              actor.UserID,
	}

	if err := s.repo.Create(ctx, auction); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAuctionCodeConflict
		}
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"auction_id":   auction.ID,
		"auction_code": auction.AuctionCode,
	}).Info("Auction created")
	return auction, nil
}

func (s *AuctionService) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := s.newCode()
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check auction code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrAuctionCodeConflict
}

// Update applies a partial update to an auction owned by the caller
func (s *AuctionService) Update(ctx context.Context, actor *auth.Session, id uuid.UUID, req *UpdateAuctionRequest) (*models.Auction, error) {
	if err := authorize(s.policy, actor, auth.ActionAuctionUpdate); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	auction, err := loadAuction(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsUser(auction.UserID) {
		return nil, apperrors.ErrNotAuctionOwner
	}

	updates := map[string]interface{}{}
	if req.AuctionName != nil {
		updates["auction_name"] = *req.AuctionName
	}
	if req.AuctionDate != nil {
		date, err := NormalizeAuctionDate(*req.AuctionDate, s.schedule.Location)
		if err != nil {
			return nil, err
		}
		updates["auction_date"] = date
		auction.AuctionDate = date
	}
	if req.AuctionTime != nil {
		updates["auction_time"] = *req.AuctionTime
		auction.AuctionTime = *req.AuctionTime
	}
	if req.TeamPoints != nil {
		updates["team_points"] = *req.TeamPoints
	}
	if req.MinimumBid != nil {
		updates["minimum_bid"] = *req.MinimumBid
	}
	if req.BidIncreaseBy != nil {
		updates["bid_increase_by"] = *req.BidIncreaseBy
	}
	if req.PlayerPerTeam != nil {
		updates["player_per_team"] = *req.PlayerPerTeam
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.PlayerRegistration != nil {
		updates["player_registration"] = *req.PlayerRegistration
	}
	if req.AuctionLogo != nil {
		updates["auction_logo"] = *req.AuctionLogo
	}
	if req.AuctionLogoPublicID != nil {
		updates["auction_logo_public_id"] = *req.AuctionLogoPublicID
	}
	if req.AuctionDate != nil || req.AuctionTime != nil {
		updates["status"] = s.schedule.Resolve(auction.AuctionDate, auction.AuctionTime)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update auction: %w", err)
		}
	}

	updated, err := loadAuction(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	s.refreshStatus(ctx, updated)
	return updated, nil
}

// Delete removes an auction owned by the caller together with its teams, players and bidders
func (s *AuctionService) Delete(ctx context.Context, actor *auth.Session, id uuid.UUID) error {
	if err := authorize(s.policy, actor, auth.ActionAuctionDelete); err != nil {
		return err
	}

	auction, err := loadAuction(ctx, s.repo, id)
	if err != nil {
		return err
	}
	if !actor.IsUser(auction.UserID) {
		return apperrors.ErrNotAuctionOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAuctionNotFound
		}
		return fmt.Errorf("failed to delete auction: %w", err)
	}

	logger.WithContext(ctx).WithField("auction_id", id).Info("Auction deleted")
	return nil
}

func (s *AuctionService) refreshStatuses(ctx context.Context, auctions []models.Auction) {
	for i := range auctions {
		s.refreshStatus(ctx, &auctions[i])
	}
}

// refreshStatus rewrites the cached status column when the clock has moved it on
func (s *AuctionService) refreshStatus(ctx context.Context, auction *models.Auction) {
	status := s.schedule.Resolve(auction.AuctionDate, auction.AuctionTime)
	if status == auction.Status {
		return
	}
	if err := s.repo.UpdateStatus(ctx, auction.ID, status); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("auction_id", auction.ID).Warn("Failed to refresh auction status")
	}
	auction.Status = status
}
