package models

import (
	"github.com/google/uuid"
)

// Auction is a configured event under which teams acquire players.
// AuctionDate is stored as YYYY-MM-DD and AuctionTime as HH:MM.
type Auction struct {
	BaseModel
	AuctionCode         string        `json:"auctionCode" gorm:"uniqueIndex;not null;size:8"`
	AuctionName         string        `json:"auctionName" gorm:"not null;size:100"`
	AuctionDate         string        `json:"auctionDate" gorm:"size:10"`
	AuctionTime         string        `json:"auctionTime" gorm:"size:5"`
	TeamPoints          int64         `json:"teamPoints" gorm:"not null"`
	MinimumBid          int64         `json:"minimumBid" gorm:"not null"`
	BidIncreaseBy       int64         `json:"bidIncreaseBy" gorm:"not null"`
	PlayerPerTeam       int           `json:"playerPerTeam" gorm:"not null"`
	Venue               string        `json:"venue" gorm:"size:200"`
	Status              AuctionStatus `json:"status" gorm:"type:varchar(20);not null;default:'UPCOMING'"`
	PlayerRegistration  bool          `json:"playerRegistration" gorm:"not null;default:false"`
	AuctionLogo         string        `json:"auctionLogo" gorm:"size:500"`
	AuctionLogoPublicID string        `json:"auctionLogoPublicId" gorm:"column:auction_logo_public_id;size:255"`
	UserID              uuid.UUID     `json:"userId" gorm:"type:char(36);not null;index"`

	Teams   []Team   `json:"teams,omitempty" gorm:"foreignKey:AuctionID"`
	Players []Player `json:"players,omitempty" gorm:"foreignKey:AuctionID"`
}

// TableName returns the table name for Auction
func (Auction) TableName() string {
	return "auctions"
}

// DefaultTeamMaxBid is the highest single bid a team can place while still
// being able to fill every remaining roster slot at the minimum bid.
func (a *Auction) DefaultTeamMaxBid() int64 {
	return a.TeamPoints - a.MinimumBid*int64(a.PlayerPerTeam-1)
}
