package testutils

import (
	"fmt"
	"time"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("owner-%s@example.com", id.String()[:8]),
		FullName:  "Test Owner",
		Image:     "https://example.com/avatar.png",
		Role:      models.RoleUser,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AuctionFactory provides methods to create test Auction data
type AuctionFactory struct{}

// NewAuctionFactory creates a new AuctionFactory
func NewAuctionFactory() *AuctionFactory {
	return &AuctionFactory{}
}

// Create creates a test Auction with default values
func (f *AuctionFactory) Create() *models.Auction {
	id := uuid.New()
	return &models.Auction{
		BaseModel:          models.BaseModel{ID: id},
		AuctionCode:        fmt.Sprintf("%08d", id.ID()%100000000),
		AuctionName:        "Premier League Auction",
		AuctionDate:        time.Now().Add(48 * time.Hour).Format("2006-01-02"),
		AuctionTime:        "18:30",
		TeamPoints:         100000,
		MinimumBid:         2000,
		BidIncreaseBy:      500,
		PlayerPerTeam:      11,
		Venue:              "Community Ground",
		Status:             models.AuctionStatusUpcoming,
		PlayerRegistration: true,
		UserID:             uuid.New(),
	}
}

// WithOwner sets the owning user for the auction
func (f *AuctionFactory) WithOwner(userID uuid.UUID) *models.Auction {
	auction := f.Create()
	auction.UserID = userID
	return auction
}

// WithCode sets a custom auction code
func (f *AuctionFactory) WithCode(userID uuid.UUID, code string) *models.Auction {
	auction := f.WithOwner(userID)
	auction.AuctionCode = code
	return auction
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamName:   "Strikers",
		TeamPoints: 100000,
		TeamMaxBid: 80000,
		AuctionID:  uuid.New(),
	}
}

// WithAuction sets the auction the team belongs to
func (f *TeamFactory) WithAuction(auctionID uuid.UUID) *models.Team {
	team := f.Create()
	team.AuctionID = auctionID
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PlayerName: "Test Player",
		BaseValue:  2000,
		AuctionID:  uuid.New(),
	}
}

// WithAuction sets the auction the player belongs to
func (f *PlayerFactory) WithAuction(auctionID uuid.UUID) *models.Player {
	player := f.Create()
	player.AuctionID = auctionID
	return player
}

// Sold creates a player allocated to a team for a price
func (f *PlayerFactory) Sold(auctionID, teamID uuid.UUID, value int64) *models.Player {
	player := f.WithAuction(auctionID)
	soldAt := time.Now()
	player.TeamID = &teamID
	player.SoldValue = &value
	player.SoldUnsoldAt = &soldAt
	return player
}

// BidderFactory provides methods to create test Bidder data
type BidderFactory struct{}

// NewBidderFactory creates a new BidderFactory
func NewBidderFactory() *BidderFactory {
	return &BidderFactory{}
}

// WithTeam creates a test Bidder for a team
func (f *BidderFactory) WithTeam(teamID uuid.UUID) *models.Bidder {
	return &models.Bidder{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    teamID,
		BidValue:  2500,
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User    *UserFactory
	Auction *AuctionFactory
	Team    *TeamFactory
	Player  *PlayerFactory
	Bidder  *BidderFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Auction: NewAuctionFactory(),
		Team:    NewTeamFactory(),
		Player:  NewPlayerFactory(),
		Bidder:  NewBidderFactory(),
	}
}
