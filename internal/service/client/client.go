package client

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/appointease/appointease_backend/internal/repo"
	entcustomer "github.com/appointease/appointease_backend/internal/repo/customer"
	entuser "github.com/appointease/appointease_backend/internal/repo/user"
)

// defaultRegion resolves national numbers when no country code is given.
const defaultRegion = "BR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name  string
	Email *string
	Phone *string
	Notes *string
}

type UpdateRequest struct {
	Name  *string
	Email *string
	Phone *string
	Notes *string
}

type ListRequest struct {
	Search  string // case-insensitive match on name or email
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, providerID uuid.UUID, req ListRequest) ([]*repo.Customer, error)
	GetByID(ctx context.Context, providerID, clientID uuid.UUID) (*repo.Customer, error)
	Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Customer, error)
	Update(ctx context.Context, providerID, clientID uuid.UUID, req UpdateRequest) (*repo.Customer, error)
	Delete(ctx context.Context, providerID, clientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clientService{db: db}
}

func (s *clientService) List(ctx context.Context, providerID uuid.UUID, req ListRequest) ([]*repo.Customer, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Customer.Query().
		Where(entcustomer.ProviderID(providerID))

	if req.Search != "" {
		q = q.Where(entcustomer.Or(
			entcustomer.NameContainsFold(req.Search),
			entcustomer.EmailContainsFold(req.Search),
		))
	}

	customers, err := q.
		Order(entcustomer.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return customers, nil
}

func (s *clientService) GetByID(ctx context.Context, providerID, clientID uuid.UUID) (*repo.Customer, error) {
	c, err := s.db.Customer.Query().
		Where(entcustomer.ID(clientID), entcustomer.ProviderID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *clientService) Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Customer, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	c := s.db.Customer.Create().
		SetProviderID(providerID).
		SetName(req.Name)

	if req.Email != nil && *req.Email != "" {
		c = c.SetEmail(*req.Email)

		// Link the dashboard account when one exists for this address
		u, err := s.db.User.Query().
			Where(entuser.Email(*req.Email)).
			Only(ctx)
		if err == nil {
			c = c.SetUserID(u.ID)
		} else if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("lookup account: %w", err)
		}
	}
	if req.Phone != nil && *req.Phone != "" {
		formatted, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		c = c.SetPhone(formatted)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	customer, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return customer, nil
}

func (s *clientService) Update(ctx context.Context, providerID, clientID uuid.UUID, req UpdateRequest) (*repo.Customer, error) {
	existing, err := s.GetByID(ctx, providerID, clientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Customer.UpdateOne(existing)

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetName(*req.Name)
	}
	if req.Email != nil {
		if *req.Email == "" {
			upd = upd.ClearEmail().ClearUserID()
		} else {
			upd = upd.SetEmail(*req.Email)
		}
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			formatted, nErr := normalizePhone(*req.Phone)
			if nErr != nil {
				return nil, nErr
			}
			upd = upd.SetPhone(formatted)
		}
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	customer, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return customer, nil
}

func (s *clientService) Delete(ctx context.Context, providerID, clientID uuid.UUID) error {
	n, err := s.db.Customer.Delete().
		Where(entcustomer.ID(clientID), entcustomer.ProviderID(providerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// normalizePhone validates the number and returns it in E.164.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
