package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cricauction-backend/internal/database/models"
	"cricauction-backend/internal/repository"
	"cricauction-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures is the layout of a seed file
type Fixtures struct {
	Users    []UserData    `yaml:"users"`
	Auctions []AuctionData `yaml:"auctions"`
}

type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role,omitempty"`
}

type AuctionData struct {
	Owner              string       `yaml:"owner"`
	Name               string       `yaml:"name"`
	Code               string       `yaml:"code,omitempty"`
	Date               string       `yaml:"date"`
	Time               string       `yaml:"time"`
	TeamPoints         int64        `yaml:"team_points"`
	MinimumBid         int64        `yaml:"minimum_bid"`
	BidIncreaseBy      int64        `yaml:"bid_increase_by"`
	PlayerPerTeam      int          `yaml:"player_per_team"`
	Venue              string       `yaml:"venue"`
	PlayerRegistration bool         `yaml:"player_registration"`
	Teams              []TeamData   `yaml:"teams,omitempty"`
	Players            []PlayerData `yaml:"players,omitempty"`
}

type TeamData struct {
	Name   string  `yaml:"name"`
	Points *int64  `yaml:"points,omitempty"`
	MaxBid *int64  `yaml:"max_bid,omitempty"`
	Bids   []int64 `yaml:"bids,omitempty"`
}

type PlayerData struct {
	Name      string `yaml:"name"`
	BaseValue *int64 `yaml:"base_value,omitempty"`
	Team      string `yaml:"team,omitempty"`
	SoldValue *int64 `yaml:"sold_value,omitempty"`
}

// Result counts the rows a seed run created
type Result struct {
	Users    int
	Auctions int
	Teams    int
	Players  int
	Bidders  int
	Skipped  int
}

// LoadFixtures reads and checks a seed file
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	users := make(map[string]bool, len(fixtures.Users))
	for _, u := range fixtures.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("user without email in %s", path)
		}
		users[strings.ToLower(u.Email)] = true
	}
	for _, a := range fixtures.Auctions {
		if !users[strings.ToLower(a.Owner)] {
			return nil, fmt.Errorf("auction %q: owner %q is not listed under users", a.Name, a.Owner)
		}
		teams := make(map[string]bool, len(a.Teams))
		for _, t := range a.Teams {
			teams[t.Name] = true
		}
		for _, p := range a.Players {
			if p.Team != "" && !teams[p.Team] {
				return nil, fmt.Errorf("auction %q: player %q names unknown team %q", a.Name, p.Name, p.Team)
			}
			if p.SoldValue != nil && p.Team == "" {
				return nil, fmt.Errorf("auction %q: player %q has a sold value but no team", a.Name, p.Name)
			}
		}
	}
	return &fixtures, nil
}

// Seeder writes fixtures through the application repositories
type Seeder struct {
	users    repository.UserRepositoryInterface
	auctions repository.AuctionRepositoryInterface
	teams    repository.TeamRepositoryInterface
	players  repository.PlayerRepositoryInterface
	bidders  repository.BidderRepositoryInterface
	schedule *service.Schedule
}

// NewSeeder creates a seeder backed by db
func NewSeeder(db *gorm.DB, schedule *service.Schedule) *Seeder {
	return &Seeder{
		users:    repository.NewUserRepository(db),
		auctions: repository.NewAuctionRepository(db),
		teams:    repository.NewTeamRepository(db),
		players:  repository.NewPlayerRepository(db),
		bidders:  repository.NewBidderRepository(db),
		schedule: schedule,
	}
}

// Seed creates missing users and auctions. Users are matched by email and
// auctions by code, so running it twice does not duplicate rows.
func (s *Seeder) Seed(ctx context.Context, fixtures *Fixtures) (*Result, error) {
	result := &Result{}
	owners := make(map[string]uuid.UUID, len(fixtures.Users))

	for _, u := range fixtures.Users {
		user, created, err := s.ensureUser(ctx, u)
		if err != nil {
			return result, err
		}
		if created {
			result.Users++
		}
		owners[strings.ToLower(u.Email)] = user.ID
	}

	for _, a := range fixtures.Auctions {
		if a.Code != "" {
			exists, err := s.auctions.CodeExists(ctx, a.Code)
			if err != nil {
				return result, fmt.Errorf("failed to check auction code %s: %w", a.Code, err)
			}
			if exists {
				logrus.WithField("auction_code", a.Code).Info("Auction already seeded, skipping")
				result.Skipped++
				continue
			}
		}
		if err := s.seedAuction(ctx, a, owners[strings.ToLower(a.Owner)], result); err != nil {
			return result, fmt.Errorf("auction %q: %w", a.Name, err)
		}
	}
	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	role := models.Role(strings.ToUpper(data.Role))
	if !role.IsValid() {
		role = models.RoleUser
	}
	user := &models.User{Email: email, FullName: data.FullName, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return user, true, nil
}

func (s *Seeder) seedAuction(ctx context.Context, data AuctionData, owner uuid.UUID, result *Result) error {
	date, err := service.NormalizeAuctionDate(data.Date, s.schedule.Location)
	if err != nil {
		return err
	}
	code := data.Code
	if code == "" {
		if code, err = s.freeCode(ctx); err != nil {
			return err
		}
	}

	auction := &models.Auction{
		AuctionCode:        code,
		AuctionName:        data.Name,
		AuctionDate:        date,
		AuctionTime:        data.Time,
		TeamPoints:         data.TeamPoints,
		MinimumBid:         data.MinimumBid,
		BidIncreaseBy:      data.BidIncreaseBy,
		PlayerPerTeam:      data.PlayerPerTeam,
		Venue:              data.Venue,
		Status:             s.schedule.Resolve(date, data.Time),
		PlayerRegistration: data.PlayerRegistration,
		UserID:             owner,
	}
	if err := s.auctions.Create(ctx, auction); err != nil {
		return fmt.Errorf("failed to create auction: %w", err)
	}
	result.Auctions++

	teams := make(map[string]*models.Team, len(data.Teams))
	for _, t := range data.Teams {
		team := &models.Team{
			TeamName:   t.Name,
			TeamPoints: auction.TeamPoints,
			TeamMaxBid: auction.DefaultTeamMaxBid(),
			AuctionID:  auction.ID,
		}
		if t.Points != nil {
			team.TeamPoints = *t.Points
		}
		if t.MaxBid != nil {
			team.TeamMaxBid = *t.MaxBid
		}
		if err := s.teams.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to create team %s: %w", t.Name, err)
		}
		result.Teams++
		teams[t.Name] = team

		for _, bid := range t.Bids {
			if err := s.bidders.Create(ctx, &models.Bidder{TeamID: team.ID, BidValue: bid}); err != nil {
				return fmt.Errorf("failed to create bidder for %s: %w", t.Name, err)
			}
			result.Bidders++
		}
	}

	for _, p := range data.Players {
		player := &models.Player{
			PlayerName: p.Name,
			BaseValue:  auction.MinimumBid,
			AuctionID:  auction.ID,
		}
		if p.BaseValue != nil {
			player.BaseValue = *p.BaseValue
		}
		if team, ok := teams[p.Team]; ok {
			player.TeamID = &team.ID
			if p.SoldValue != nil {
				value := *p.SoldValue
				at := s.schedule.Now()
				player.SoldValue = &value
				player.SoldUnsoldAt = &at
				team.TeamUsedPoints += value
				team.TeamNumberOfPlayers++
			}
		}
		if err := s.players.Create(ctx, player); err != nil {
			return fmt.Errorf("failed to create player %s: %w", p.Name, err)
		}
		result.Players++
	}

	for _, team := range teams {
		if team.TeamNumberOfPlayers == 0 {
			continue
		}
		if err := s.teams.Update(ctx, team.ID, map[string]interface{}{
			"team_used_points":       team.TeamUsedPoints,
			"team_number_of_players": team.TeamNumberOfPlayers,
		}); err != nil {
			return fmt.Errorf("failed to update team %s: %w", team.TeamName, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"auction_id":   auction.ID,
		"auction_code": auction.AuctionCode,
		"teams":        len(data.Teams),
		"players":      len(data.Players),
	}).Info("Seeded auction")
	return nil
}

func (s *Seeder) freeCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := service.RandomAuctionCode()
		exists, err := s.auctions.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check auction code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("no free auction code after 5 attempts")
}
