package repository

import (
	"context"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithRoster retrieves a team with its players and bidders
func (r *TeamRepository) GetWithRoster(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Players").Preload("Bidders").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByAuction retrieves the teams of an auction with their rosters, newest first
func (r *TeamRepository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Preload("Players").
		Preload("Bidders").
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").
		Find(&teams).Error
	return teams, err
}

// CountByAuction returns the number of teams in an auction
func (r *TeamRepository) CountByAuction(ctx context.Context, auctionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Where("auction_id = ?", auctionID).Count(&count).Error
	return count, err
}

// Update applies a partial update to a team
func (r *TeamRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a team in one transaction: players lose their sale markers and
// team link, bidders of the team are deleted, and the team row goes last.
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Player{}).Where("team_id = ?", id).Updates(map[string]interface{}{
			"sold_value":     nil,
			"sold_unsold_at": nil,
			"team_id":        nil,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.Bidder{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Team{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
