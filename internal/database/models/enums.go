package models

// Role is the access role carried on a user and its session
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuctionStatus is the lifecycle position of an auction
type AuctionStatus string

const (
	AuctionStatusUpcoming  AuctionStatus = "UPCOMING"
	AuctionStatusOngoing   AuctionStatus = "ONGOING"
	AuctionStatusCompleted AuctionStatus = "COMPLETED"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the AuctionStatus is valid
func (s AuctionStatus) IsValid() bool {
	switch s {
	case AuctionStatusUpcoming, AuctionStatusOngoing, AuctionStatusCompleted:
		return true
	}
	return false
}
