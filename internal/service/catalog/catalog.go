package catalog

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	entservice "github.com/appointease/appointease_backend/internal/repo/service"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name            string
	Description     *string
	DurationMinutes int
	PriceCents      int64
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	PriceCents      *int64
	Active          *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*repo.Service, error)
	GetByID(ctx context.Context, providerID, serviceID uuid.UUID) (*repo.Service, error)
	Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Service, error)
	Update(ctx context.Context, providerID, serviceID uuid.UUID, req UpdateRequest) (*repo.Service, error)

	// Deactivate retires a service from the catalog. Rows are kept so past
	// appointments stay resolvable.
	Deactivate(ctx context.Context, providerID, serviceID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &catalogService{db: db}
}

func (s *catalogService) List(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*repo.Service, error) {
	q := s.db.Service.Query().
		Where(entservice.ProviderID(providerID))

	if !includeInactive {
		q = q.Where(entservice.Active(true))
	}

	services, err := q.
		Order(entservice.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) GetByID(ctx context.Context, providerID, serviceID uuid.UUID) (*repo.Service, error) {
	svc, err := s.db.Service.Query().
		Where(entservice.ID(serviceID), entservice.ProviderID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Service, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	c := s.db.Service.Create().
		SetProviderID(providerID).
		SetName(req.Name).
		SetDurationMinutes(req.DurationMinutes).
		SetPriceCents(req.PriceCents)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}

	svc, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, providerID, serviceID uuid.UUID, req UpdateRequest) (*repo.Service, error) {
	existing, err := s.GetByID(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Service.UpdateOne(existing)

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		upd = upd.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		upd = upd.SetPriceCents(*req.PriceCents)
	}
	if req.Active != nil {
		upd = upd.SetActive(*req.Active)
	}

	svc, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Deactivate(ctx context.Context, providerID, serviceID uuid.UUID) error {
	n, err := s.db.Service.Update().
		Where(entservice.ID(serviceID), entservice.ProviderID(providerID)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
