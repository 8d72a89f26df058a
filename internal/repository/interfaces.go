package repository

import (
	"context"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

// AuctionRepositoryInterface defines the interface for auction repository operations
type AuctionRepositoryInterface interface {
	Create(ctx context.Context, auction *models.Auction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Auction, error)
	GetByCode(ctx context.Context, code string) (*models.Auction, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]models.Auction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Auction, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AuctionStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetWithRoster(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Team, error)
	CountByAuction(ctx context.Context, auctionID uuid.UUID) (int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Player, error)
	TopSold(ctx context.Context, auctionID uuid.UUID, limit int) ([]models.Player, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BidderRepositoryInterface defines the interface for bidder repository operations
type BidderRepositoryInterface interface {
	Create(ctx context.Context, bidder *models.Bidder) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Bidder, error)
}
