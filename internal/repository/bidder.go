package repository

import (
	"context"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BidderRepository handles database operations for bidders
type BidderRepository struct {
	db *gorm.DB
}

// NewBidderRepository creates a new bidder repository
func NewBidderRepository(db *gorm.DB) *BidderRepository {
	return &BidderRepository{db: db}
}

// Create creates a new bidder
func (r *BidderRepository) Create(ctx context.Context, bidder *models.Bidder) error {
	return r.db.WithContext(ctx).Create(bidder).Error
}

// ListByTeam retrieves the bidders of a team
func (r *BidderRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Bidder, error) {
	var bidders []models.Bidder
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Find(&bidders).Error
	return bidders, err
}
