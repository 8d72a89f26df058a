package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is a participant who may be acquired by a team of the same auction
type Player struct {
	BaseModel
	PlayerName   string     `json:"playerName" gorm:"not null;size:100"`
	BaseValue    int64      `json:"baseValue" gorm:"not null"`
	SoldValue    *int64     `json:"soldValue"`
	SoldUnsoldAt *time.Time `json:"soldUnsoldAt"`
	AuctionID    uuid.UUID  `json:"auctionId" gorm:"type:char(36);not null;index"`
	TeamID       *uuid.UUID `json:"teamId" gorm:"type:char(36);index"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// IsSold reports whether the player has been allocated to a team with a price
func (p *Player) IsSold() bool {
	return p.TeamID != nil && p.SoldValue != nil && *p.SoldValue > 0
}
