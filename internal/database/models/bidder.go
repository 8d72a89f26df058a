package models

import (
	"github.com/google/uuid"
)

// Bidder records a team's participation in a bidding round
type Bidder struct {
	BaseModel
	TeamID   uuid.UUID  `json:"teamId" gorm:"type:char(36);not null;index"`
	PlayerID *uuid.UUID `json:"playerId" gorm:"type:char(36);index"`
	BidValue int64      `json:"bidValue" gorm:"not null;default:0"`
}

// TableName returns the table name for Bidder
func (Bidder) TableName() string {
	return "bidders"
}
