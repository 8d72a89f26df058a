package service

import (
	"strings"
	"time"

	"cricauction-backend/internal/database/models"
	apperrors "cricauction-backend/internal/errors"
)

const (
	auctionDateLayout  = "2006-01-02"
	auctionClockLayout = "15:04"

	// DefaultAuctionWindow is how long an auction stays ongoing after its start
	DefaultAuctionWindow = 4 * time.Hour
)

// Schedule derives auction status from wall-clock time
type Schedule struct {
	Location *time.Location
	Window   time.Duration
	Now      func() time.Time
}

// NewSchedule creates a schedule in loc; a nil loc means UTC and a non-positive window the default
func NewSchedule(loc *time.Location, window time.Duration) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	if window <= 0 {
		window = DefaultAuctionWindow
	}
	return &Schedule{Location: loc, Window: window, Now: time.Now}
}

// Resolve returns the status of an auction scheduled at date and clock right now
func (s *Schedule) Resolve(date, clock string) models.AuctionStatus {
	return ResolveStatus(date, clock, s.Now(), s.Location, s.Window)
}

// AuctionStart combines a YYYY-MM-DD date and an HH:MM time in loc
func AuctionStart(date, clock string, loc *time.Location) (time.Time, bool) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	start, err := time.ParseInLocation(auctionDateLayout+" "+auctionClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// ResolveStatus is UPCOMING before the start, ONGOING within [start, start+window]
// and COMPLETED afterwards. An unscheduled auction is UPCOMING.
func ResolveStatus(date, clock string, now time.Time, loc *time.Location, window time.Duration) models.AuctionStatus {
	start, ok := AuctionStart(date, clock, loc)
	if !ok {
		return models.AuctionStatusUpcoming
	}

	switch {
	case now.Before(start):
		return models.AuctionStatusUpcoming
	case !now.After(start.Add(window)):
		return models.AuctionStatusOngoing
	default:
		return models.AuctionStatusCompleted
	}
}

// NormalizeAuctionDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns YYYY-MM-DD in loc
func NormalizeAuctionDate(value string, loc *time.Location) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.ErrInvalidDate
	}
	if d, err := time.ParseInLocation(auctionDateLayout, value, loc); err == nil {
		return d.Format(auctionDateLayout), nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.In(loc).Format(auctionDateLayout), nil
	}
	return "", apperrors.ErrInvalidDate
}
