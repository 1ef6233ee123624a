package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	entappt "github.com/appointease/appointease_backend/internal/repo/appointment"
	entcustomer "github.com/appointease/appointease_backend/internal/repo/customer"
	entservice "github.com/appointease/appointease_backend/internal/repo/service"
	entuser "github.com/appointease/appointease_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	Name         *string
	BusinessName *string
	Phone        *string
	AvatarURL    *string
}

// DashboardStats backs the provider's landing page counters.
type DashboardStats struct {
	TotalClients      int `json:"total_clients"`
	ActiveServices    int `json:"active_services"`
	AppointmentsToday int `json:"appointments_today"`
	UpcomingTotal     int `json:"upcoming_total"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
	Stats(ctx context.Context, providerID uuid.UUID, today string) (*DashboardStats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(existing)
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.BusinessName != nil {
		upd = upd.SetBusinessName(*req.BusinessName)
	}
	if req.Phone != nil {
		upd = upd.SetPhone(*req.Phone)
	}
	if req.AvatarURL != nil {
		upd = upd.SetAvatarURL(*req.AvatarURL)
	}

	u, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (s *userService) Stats(ctx context.Context, providerID uuid.UUID, today string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalClients, err = s.db.Customer.Query().
		Where(entcustomer.ProviderID(providerID)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	if stats.ActiveServices, err = s.db.Service.Query().
		Where(entservice.ProviderID(providerID), entservice.Active(true)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}

	if stats.AppointmentsToday, err = s.db.Appointment.Query().
		Where(
			entappt.ProviderID(providerID),
			entappt.Date(today),
			entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
		).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count today's appointments: %w", err)
	}

	if stats.UpcomingTotal, err = s.db.Appointment.Query().
		Where(
			entappt.ProviderID(providerID),
			entappt.DateGTE(today),
			entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
		).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count upcoming appointments: %w", err)
	}

	return stats, nil
}
