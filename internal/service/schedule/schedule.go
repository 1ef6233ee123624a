package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	enthour "github.com/appointease/appointease_backend/internal/repo/businesshour"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// DayHours is one weekday's window in a bulk update. Times use HH:MM.
type DayHours struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, providerID uuid.UUID) ([]*repo.BusinessHour, error)

	// SetWeek replaces the provider's whole weekly schedule. Days missing
	// from the request are left untouched.
	SetWeek(ctx context.Context, providerID uuid.UUID, week []DayHours) ([]*repo.BusinessHour, error)

	// IsOpen reports whether the provider accepts appointments at the
	// given date (YYYY-MM-DD) and time (HH:MM). A weekday with no row is
	// closed.
	IsOpen(ctx context.Context, providerID uuid.UUID, date, at string) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &scheduleService{db: db}
}

func (s *scheduleService) List(ctx context.Context, providerID uuid.UUID) ([]*repo.BusinessHour, error) {
	hours, err := s.db.BusinessHour.Query().
		Where(enthour.ProviderID(providerID)).
		Order(enthour.ByDayOfWeek()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list business hours: %w", err)
	}
	return hours, nil
}

func (s *scheduleService) SetWeek(ctx context.Context, providerID uuid.UUID, week []DayHours) ([]*repo.BusinessHour, error) {
	for _, day := range week {
		if err := validateDay(day); err != nil {
			return nil, err
		}

		err := s.db.BusinessHour.Create().
			SetProviderID(providerID).
			SetDayOfWeek(day.DayOfWeek).
			SetOpenTime(day.OpenTime).
			SetCloseTime(day.CloseTime).
			SetClosed(day.Closed).
			OnConflictColumns(enthour.FieldProviderID, enthour.FieldDayOfWeek).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("upsert business hours: %w", err)
		}
	}

	return s.List(ctx, providerID)
}

func (s *scheduleService) IsOpen(ctx context.Context, providerID uuid.UUID, date, at string) (bool, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	clock, err := parseClock(at)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidTime, at)
	}

	hours, err := s.db.BusinessHour.Query().
		Where(
			enthour.ProviderID(providerID),
			enthour.DayOfWeek(int(day.Weekday())),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get business hours: %w", err)
	}
	if hours.Closed {
		return false, nil
	}

	return withinWindow(hours.OpenTime, hours.CloseTime, clock)
}

// validateDay checks one weekday entry. Open and close times are only
// required when the day is not marked closed.
func validateDay(day DayHours) error {
	if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
		return fmt.Errorf("%w: day %d", ErrInvalidDay, day.DayOfWeek)
	}
	if day.Closed {
		return nil
	}
	open, err := parseClock(day.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, day.OpenTime)
	}
	closeAt, err := parseClock(day.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, day.CloseTime)
	}
	if !open.Before(closeAt) {
		return ErrOpenAfterClose
	}
	return nil
}

// withinWindow reports whether clock falls in [open, close). The closing
// minute itself is outside the window.
func withinWindow(openTime, closeTime string, clock time.Time) (bool, error) {
	open, err := parseClock(openTime)
	if err != nil {
		return false, fmt.Errorf("stored open time %q: %w", openTime, err)
	}
	closeAt, err := parseClock(closeTime)
	if err != nil {
		return false, fmt.Errorf("stored close time %q: %w", closeTime, err)
	}
	return !clock.Before(open) && clock.Before(closeAt), nil
}

func parseClock(v string) (time.Time, error) {
	return time.Parse("15:04", v)
}
