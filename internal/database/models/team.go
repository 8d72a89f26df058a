package models

import (
	"github.com/google/uuid"
)

// Team is a participant of one auction with a points budget
type Team struct {
	BaseModel
	TeamName            string    `json:"teamName" gorm:"not null;size:100"`
	TeamPoints          int64     `json:"teamPoints" gorm:"not null"`
	TeamUsedPoints      int64     `json:"teamUsedPoints" gorm:"not null;default:0"`
	TeamMaxBid          int64     `json:"teamMaxBid" gorm:"not null"`
	TeamNumberOfPlayers int       `json:"teamNumberOfPlayers" gorm:"not null;default:0"`
	TeamLogo            string    `json:"teamLogo" gorm:"size:500"`
	TeamLogoPublicID    string    `json:"teamLogoPublicId" gorm:"column:team_logo_public_id;size:255"`
	AuctionID           uuid.UUID `json:"auctionId" gorm:"type:char(36);not null;index"`

	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
	Bidders []Bidder `json:"bidders,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
