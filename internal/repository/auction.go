package repository

import (
	"context"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuctionRepository handles database operations for auctions
type AuctionRepository struct {
	db *gorm.DB
}

// NewAuctionRepository creates a new auction repository
func NewAuctionRepository(db *gorm.DB) *AuctionRepository {
	return &AuctionRepository{db: db}
}

// Create creates a new auction
func (r *AuctionRepository) Create(ctx context.Context, auction *models.Auction) error {
	return r.db.WithContext(ctx).Create(auction).Error
}

// GetByID retrieves an auction by ID
func (r *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	var auction models.Auction
	err := r.db.WithContext(ctx).First(&auction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &auction, nil
}

// GetByCode retrieves an auction by its public code
func (r *AuctionRepository) GetByCode(ctx context.Context, code string) (*models.Auction, error) {
	var auction models.Auction
	err := r.db.WithContext(ctx).First(&auction, "auction_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &auction, nil
}

// CodeExists reports whether an auction already uses code
func (r *AuctionRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Auction{}).Where("auction_code = ?", code).Count(&count).Error
	return count > 0, err
}

// List retrieves all auctions, newest first
func (r *AuctionRepository) List(ctx context.Context) ([]models.Auction, error) {
	var auctions []models.Auction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&auctions).Error
	return auctions, err
}

// ListByUser retrieves the auctions owned by a user, newest first
func (r *AuctionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Auction, error) {
	var auctions []models.Auction
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&auctions).Error
	return auctions, err
}

// Update applies a partial update to an auction
func (r *AuctionRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Auction{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateStatus rewrites the cached status column without touching updated_at
func (r *AuctionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AuctionStatus) error {
	return r.db.WithContext(ctx).Model(&models.Auction{}).Where("id = ?", id).UpdateColumn("status", status).Error
}

// Delete removes an auction together with its teams, players and bidders
func (r *AuctionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teamIDs []uuid.UUID
		if err := tx.Model(&models.Team{}).Where("auction_id = ?", id).Pluck("id", &teamIDs).Error; err != nil {
			return err
		}
		if len(teamIDs) > 0 {
			if err := tx.Where("team_id IN ?", teamIDs).Delete(&models.Bidder{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("auction_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		if err := tx.Where("auction_id = ?", id).Delete(&models.Team{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Auction{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
