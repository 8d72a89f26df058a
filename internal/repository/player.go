package repository

import (
	"context"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListByAuction retrieves the players of an auction, newest first
func (r *PlayerRepository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("created_at DESC").Find(&players).Error
	return players, err
}

// TopSold retrieves the highest priced sold players of an auction
func (r *PlayerRepository) TopSold(ctx context.Context, auctionID uuid.UUID, limit int) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("auction_id = ? AND team_id IS NOT NULL AND sold_value > 0", auctionID).
		Order("sold_value DESC").
		Limit(limit).
		Find(&players).Error
	return players, err
}

// Update applies a partial update to a player
func (r *PlayerRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Player{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
