package service

import (
	"context"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuctionServiceInterface defines the interface for auction service
type AuctionServiceInterface interface {
	List(ctx context.Context, actor *auth.Session) ([]models.Auction, error)
	ListByUser(ctx context.Context, actor *auth.Session, userID uuid.UUID) ([]models.Auction, error)
	GetByID(ctx context.Context, actor *auth.Session, id uuid.UUID) (*models.Auction, error)
	GetByCode(ctx context.Context, code string) (*PublicAuctionResponse, error)
	Create(ctx context.Context, actor *auth.Session, req *CreateAuctionRequest) (*models.Auction, error)
	Update(ctx context.Context, actor *auth.Session, id uuid.UUID, req *UpdateAuctionRequest) (*models.Auction, error)
	Delete(ctx context.Context, actor *auth.Session, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Team, error)
	GetByID(ctx context.Context, auctionID, teamID uuid.UUID) (*models.Team, error)
	Create(ctx context.Context, actor *auth.Session, auctionID uuid.UUID, req *CreateTeamRequest) (*models.Team, error)
	Update(ctx context.Context, actor *auth.Session, auctionID, teamID uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, actor *auth.Session, auctionID, teamID uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Player, error)
	GetByID(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID) (*models.Player, error)
	Create(ctx context.Context, actor *auth.Session, auctionID uuid.UUID, req *CreatePlayerRequest) (*models.Player, error)
	Update(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error)
	Delete(ctx context.Context, actor *auth.Session, auctionID, playerID uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Update(ctx context.Context, actor *auth.Session, id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
}

// StatsServiceInterface defines the interface for stats service
type StatsServiceInterface interface {
	Global(ctx context.Context, actor *auth.Session) (*AuctionStatsResponse, error)
	Profile(ctx context.Context, actor *auth.Session) (*AuctionStatsResponse, error)
	AuctionSummary(ctx context.Context, auctionID uuid.UUID) (*AuctionSummaryResponse, error)
}

// ImageServiceInterface defines the interface for image service
type ImageServiceInterface interface {
	Delete(ctx context.Context, publicID string) error
}
