package service

import (
	"context"
	"fmt"

	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/database/models"
	"cricauction-backend/internal/repository"

	"github.com/google/uuid"
)

// mvpCount is how many top sold players an auction summary lists
const mvpCount = 3

// StatsService aggregates auction counts and per-auction summaries
type StatsService struct {
	auctions repository.AuctionRepositoryInterface
	teams    repository.TeamRepositoryInterface
	players  repository.PlayerRepositoryInterface
	policy   *auth.Policy
	schedule *Schedule
}

// Ensure StatsService implements StatsServiceInterface
var _ StatsServiceInterface = (*StatsService)(nil)

// NewStatsService creates a new StatsService
func NewStatsService(auctions repository.AuctionRepositoryInterface, teams repository.TeamRepositoryInterface, players repository.PlayerRepositoryInterface, policy *auth.Policy, schedule *Schedule) *StatsService {
	return &StatsService{
		auctions: auctions,
		teams:    teams,
		players:  players,
		policy:   policy,
		schedule: schedule,
	}
}

// AuctionStatsResponse counts auctions by their time-derived status
type AuctionStatsResponse struct {
	AuctionStats           int `json:"auctionStats" example:"12"`
	TotalOngoingAuctions   int `json:"totalOngoingAuctions" example:"1"`
	TotalUpcomingAuctions  int `json:"totalUpcomingAuctions" example:"4"`
	TotalCompletedAuctions int `json:"totalCompletedAuctions" example:"7"`
}

// MVPPlayer is one of the highest priced players of an auction
type MVPPlayer struct {
	ID         uuid.UUID  `json:"id"`
	PlayerName string     `json:"playerName"`
	SoldValue  int64      `json:"soldValue"`
	TeamID     *uuid.UUID `json:"teamId"`
	TeamName   string     `json:"teamName"`
}

// AuctionSummaryResponse describes the progress of one auction
type AuctionSummaryResponse struct {
	AuctionID      uuid.UUID            `json:"auctionId"`
	Status         models.AuctionStatus `json:"status"`
	TotalTeams     int                  `json:"totalTeams"`
	TotalPlayers   int                  `json:"totalPlayers"`
	SoldPlayers    int                  `json:"soldPlayers"`
	UnsoldPlayers  int                  `json:"unsoldPlayers"`
	PendingPlayers int                  `json:"pendingPlayers"`
	PointsSpent    int64                `json:"pointsSpent"`
	TopPlayers     []MVPPlayer          `json:"topPlayers"`
}

// Global counts every auction
func (s *StatsService) Global(ctx context.Context, actor *auth.Session) (*AuctionStatsResponse, error) {
	if err := authorize(s.policy, actor, auth.ActionStatsRead); err != nil {
		return nil, err
	}

	auctions, err := s.auctions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	return s.tally(auctions), nil
}

// Profile counts the caller's auctions
func (s *StatsService) Profile(ctx context.Context, actor *auth.Session) (*AuctionStatsResponse, error) {
	if err := authorize(s.policy, actor, auth.ActionStatsRead); err != nil {
		return nil, err
	}

	auctions, err := s.auctions.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	return s.tally(auctions), nil
}

func (s *StatsService) tally(auctions []models.Auction) *AuctionStatsResponse {
	stats := &AuctionStatsResponse{AuctionStats: len(auctions)}
	for _, auction := range auctions {
		switch s.schedule.Resolve(auction.AuctionDate, auction.AuctionTime) {
		case models.AuctionStatusOngoing:
			stats.TotalOngoingAuctions++
		case models.AuctionStatusCompleted:
			stats.TotalCompletedAuctions++
		default:
			stats.TotalUpcomingAuctions++
		}
	}
	return stats
}

// AuctionSummary reports team and player progress of one auction, including its top sold players
func (s *StatsService) AuctionSummary(ctx context.Context, auctionID uuid.UUID) (*AuctionSummaryResponse, error) {
	auction, err := loadAuction(ctx, s.auctions, auctionID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	players, err := s.players.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	top, err := s.players.TopSold(ctx, auctionID, mvpCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list top players: %w", err)
	}

	summary := &AuctionSummaryResponse{
		AuctionID:    auction.ID,
		Status:       s.schedule.Resolve(auction.AuctionDate, auction.AuctionTime),
		TotalTeams:   len(teams),
		TotalPlayers: len(players),
		TopPlayers:   make([]MVPPlayer, 0, len(top)),
	}
	for i := range players {
		switch {
		case players[i].IsSold():
			summary.SoldPlayers++
			summary.PointsSpent += *players[i].SoldValue
		case players[i].SoldUnsoldAt != nil:
			summary.UnsoldPlayers++
		default:
			summary.PendingPlayers++
		}
	}

	teamNames := make(map[uuid.UUID]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.TeamName
	}
	for _, player := range top {
		mvp := MVPPlayer{ID: player.ID, PlayerName: player.PlayerName, TeamID: player.TeamID}
		if player.SoldValue != nil {
			mvp.SoldValue = *player.SoldValue
		}
		if player.TeamID != nil {
			mvp.TeamName = teamNames[*player.TeamID]
		}
		summary.TopPlayers = append(summary.TopPlayers, mvp)
	}
	return summary, nil
}
