package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/appointease/appointease_backend/internal/repo"
	entappt "github.com/appointease/appointease_backend/internal/repo/appointment"
	entcustomer "github.com/appointease/appointease_backend/internal/repo/customer"
	entservice "github.com/appointease/appointease_backend/internal/repo/service"
	"github.com/appointease/appointease_backend/internal/service/schedule"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	ClientID *uuid.UUID
	Status   *string
	DateFrom *string // YYYY-MM-DD inclusive
	DateTo   *string // YYYY-MM-DD inclusive
	Page     int
	PerPage  int
}

type CreateRequest struct {
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Notes     *string
}

type UpdateRequest struct {
	ServiceID *uuid.UUID
	Date      *string
	Time      *string
	Notes     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, providerID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, providerID, apptID uuid.UUID) (*repo.Appointment, error)
	Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Appointment, error)
	Update(ctx context.Context, providerID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, providerID, apptID uuid.UUID) error
	Cancel(ctx context.Context, providerID, apptID uuid.UUID) error
	Complete(ctx context.Context, providerID, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, providerID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db       *repo.Client
	nc       *nats.Conn
	schedule schedule.Service
}

func New(db *repo.Client, nc *nats.Conn, schedule schedule.Service) Service {
	return &appointmentService{db: db, nc: nc, schedule: schedule}
}

func (s *appointmentService) List(ctx context.Context, providerID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.ProviderID(providerID))

	if req.ClientID != nil {
		q = q.Where(entappt.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.DateFrom != nil {
		q = q.Where(entappt.DateGTE(*req.DateFrom))
	}
	if req.DateTo != nil {
		q = q.Where(entappt.DateLTE(*req.DateTo))
	}

	appts, err := q.
		Order(entappt.ByDate(sql.OrderDesc()), entappt.ByTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, providerID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ProviderID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Create(ctx context.Context, providerID uuid.UUID, req CreateRequest) (*repo.Appointment, error) {
	if err := validateDateTime(req.Date, req.Time); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, providerID, req.ClientID, req.ServiceID); err != nil {
		return nil, err
	}

	open, err := s.schedule.IsOpen(ctx, providerID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrOutsideBusinessHours
	}

	c := s.db.Appointment.Create().
		SetProviderID(providerID).
		SetClientID(req.ClientID).
		SetServiceID(req.ServiceID).
		SetDate(req.Date).
		SetTime(req.Time)

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// Keep the customer's booking counters current
	_ = s.db.Customer.Update().
		Where(entcustomer.ID(req.ClientID)).
		AddTotalAppointments(1).
		SetLastAppointmentAt(time.Now()).
		Exec(ctx)

	s.publish("created", appt.ID)
	return appt, nil
}

func (s *appointmentService) Update(ctx context.Context, providerID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, providerID, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == entappt.StatusCanceled || appt.Status == entappt.StatusCompleted {
		return nil, ErrNotReschedulable
	}

	date := appt.Date
	at := appt.Time
	if req.Date != nil {
		date = *req.Date
	}
	if req.Time != nil {
		at = *req.Time
	}
	if err := validateDateTime(date, at); err != nil {
		return nil, err
	}

	if req.Date != nil || req.Time != nil {
		open, err := s.schedule.IsOpen(ctx, providerID, date, at)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, ErrOutsideBusinessHours
		}
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetDate(date).
		SetTime(at)

	if req.ServiceID != nil {
		if err := s.checkService(ctx, providerID, *req.ServiceID); err != nil {
			return nil, err
		}
		upd = upd.SetServiceID(*req.ServiceID)
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	appt, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.publish("updated", appt.ID)
	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, providerID, apptID uuid.UUID) error {
	if err := s.transition(ctx, providerID, apptID, entappt.StatusScheduled, entappt.StatusConfirmed); err != nil {
		return err
	}
	s.publish("confirmed", apptID)
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, providerID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, providerID, apptID)
	if err != nil {
		return err
	}
	if appt.Status == entappt.StatusCanceled {
		return ErrAlreadyCanceled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}

	err = s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCanceled).
		SetCanceledAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish("canceled", apptID)
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, providerID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, providerID, apptID)
	if err != nil {
		return err
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if appt.Status == entappt.StatusCanceled {
		return ErrAlreadyCanceled
	}

	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		Exec(ctx)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, providerID, apptID uuid.UUID) error {
	return s.transition(ctx, providerID, apptID, entappt.StatusConfirmed, entappt.StatusNoShow)
}

// transition moves scheduled/confirmed appointments along the lifecycle;
// from is the only status the update applies to.
func (s *appointmentService) transition(ctx context.Context, providerID, apptID uuid.UUID, from, to entappt.Status) error {
	n, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.ProviderID(providerID),
			entappt.StatusEQ(from),
		).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update status to %s: %w", to, err)
	}
	if n == 0 {
		// Either missing or in the wrong state; disambiguate for the caller.
		if _, gErr := s.GetByID(ctx, providerID, apptID); gErr != nil {
			return gErr
		}
		return ErrInvalidTransition
	}
	return nil
}

func (s *appointmentService) checkOwnership(ctx context.Context, providerID, clientID, serviceID uuid.UUID) error {
	ok, err := s.db.Customer.Query().
		Where(entcustomer.ID(clientID), entcustomer.ProviderID(providerID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check client: %w", err)
	}
	if !ok {
		return ErrClientNotFound
	}
	return s.checkService(ctx, providerID, serviceID)
}

func (s *appointmentService) checkService(ctx context.Context, providerID, serviceID uuid.UUID) error {
	ok, err := s.db.Service.Query().
		Where(
			entservice.ID(serviceID),
			entservice.ProviderID(providerID),
			entservice.Active(true),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check service: %w", err)
	}
	if !ok {
		return ErrServiceNotFound
	}
	return nil
}

func (s *appointmentService) publish(verb string, apptID uuid.UUID) {
	if s.nc != nil {
		subject := fmt.Sprintf("appointease.appointment.%s.%s", verb, apptID.String())
		_ = s.nc.Publish(subject, []byte(apptID.String()))
	}
}

func validateDateTime(date, at string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, at)
	}
	return nil
}
