package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	entappt "github.com/appointease/appointease_backend/internal/repo/appointment"
	entcustomer "github.com/appointease/appointease_backend/internal/repo/customer"
	entservice "github.com/appointease/appointease_backend/internal/repo/service"
	entuser "github.com/appointease/appointease_backend/internal/repo/user"
	"github.com/appointease/appointease_backend/internal/service/notification"
	"github.com/appointease/appointease_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Appointment is one reminder target with everything the templates need,
// joined from the appointment, client, service and provider rows.
type Appointment struct {
	ID            uuid.UUID
	Date          string
	Time          string
	ServiceName   string
	ClientName    string
	ClientEmail   string
	ClientUserID  *uuid.UUID
	ProviderID    uuid.UUID
	ProviderName  string
	ProviderEmail string
}

// AppointmentResult reports the four reminder sub-operations for one
// appointment. A leg counts as true unless it actually failed; a
// preference opt-out is not a failure.
type AppointmentResult struct {
	AppointmentID        uuid.UUID `json:"appointment_id"`
	ClientNotification   bool      `json:"client_notification"`
	ClientEmail          bool      `json:"client_email"`
	ProviderNotification bool      `json:"provider_notification"`
	ProviderEmail        bool      `json:"provider_email"`
}

type BatchResult struct {
	Date    string              `json:"date"`
	Count   int                 `json:"count"`
	Results []AppointmentResult `json:"results"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Dispatcher is the notification fan-out the driver feeds events into.
type Dispatcher interface {
	Dispatch(ctx context.Context, evt notification.Event) notification.DispatchResult
}

type Service interface {
	// RunForDate reminds every scheduled or confirmed appointment on the
	// given date (YYYY-MM-DD). Re-running for the same date resends; the
	// driver keeps no state between invocations.
	RunForDate(ctx context.Context, date string) (*BatchResult, error)

	// SendForAppointment reminds a single appointment's client and provider.
	SendForAppointment(ctx context.Context, appointmentID uuid.UUID) (*AppointmentResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reminderService struct {
	db         *repo.Client
	dispatcher Dispatcher
}

func New(db *repo.Client, dispatcher Dispatcher) Service {
	return &reminderService{db: db, dispatcher: dispatcher}
}

func (s *reminderService) RunForDate(ctx context.Context, date string) (*BatchResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.Date(date),
			entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query appointments for %s: %w", date, err)
	}

	targets, err := s.load(ctx, appts)
	if err != nil {
		return nil, err
	}

	results := s.remindAll(ctx, targets)
	return &BatchResult{
		Date:    date,
		Count:   len(results),
		Results: results,
	}, nil
}

func (s *reminderService) SendForAppointment(ctx context.Context, appointmentID uuid.UUID) (*AppointmentResult, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(appointmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	targets, err := s.load(ctx, []*repo.Appointment{appt})
	if err != nil {
		return nil, err
	}

	res := s.remind(ctx, targets[0])
	return &res, nil
}

// load joins the client, service and provider rows for a batch of
// appointments with one query per table.
func (s *reminderService) load(ctx context.Context, appts []*repo.Appointment) ([]Appointment, error) {
	if len(appts) == 0 {
		return nil, nil
	}

	clientIDs := make([]uuid.UUID, 0, len(appts))
	serviceIDs := make([]uuid.UUID, 0, len(appts))
	providerIDs := make([]uuid.UUID, 0, len(appts))
	for _, a := range appts {
		clientIDs = append(clientIDs, a.ClientID)
		serviceIDs = append(serviceIDs, a.ServiceID)
		providerIDs = append(providerIDs, a.ProviderID)
	}

	clients, err := s.db.Customer.Query().
		Where(entcustomer.IDIn(clientIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	clientByID := make(map[uuid.UUID]*repo.Customer, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	services, err := s.db.Service.Query().
		Where(entservice.IDIn(serviceIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	serviceByID := make(map[uuid.UUID]*repo.Service, len(services))
	for _, sv := range services {
		serviceByID[sv.ID] = sv
	}

	providers, err := s.db.User.Query().
		Where(entuser.IDIn(providerIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load providers: %w", err)
	}
	providerByID := make(map[uuid.UUID]*repo.User, len(providers))
	for _, u := range providers {
		providerByID[u.ID] = u
	}

	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		target := Appointment{
			ID:         a.ID,
			Date:       a.Date,
			Time:       a.Time,
			ProviderID: a.ProviderID,
		}
		if c, ok := clientByID[a.ClientID]; ok {
			target.ClientName = c.Name
			if c.Email != nil {
				target.ClientEmail = *c.Email
			}
			target.ClientUserID = c.UserID
		}
		if sv, ok := serviceByID[a.ServiceID]; ok {
			target.ServiceName = sv.Name
		}
		if p, ok := providerByID[a.ProviderID]; ok {
			target.ProviderEmail = p.Email
			if p.Name != nil {
				target.ProviderName = *p.Name
			}
		}
		out = append(out, target)
	}
	return out, nil
}

func (s *reminderService) remindAll(ctx context.Context, targets []Appointment) []AppointmentResult {
	results := make([]AppointmentResult, 0, len(targets))
	for _, t := range targets {
		results = append(results, s.remind(ctx, t))
	}
	return results
}

func (s *reminderService) remind(ctx context.Context, t Appointment) AppointmentResult {
	apptID := t.ID
	details := email.AppointmentDetails{
		ClientName:   t.ClientName,
		ProviderName: t.ProviderName,
		ServiceName:  t.ServiceName,
		Date:         t.Date,
		Time:         t.Time,
	}

	clientEvt := notification.Event{
		Type:          notification.EventAppointmentReminder,
		Title:         "Lembrete de Agendamento",
		Message:       fmt.Sprintf("Você tem um agendamento de %s amanhã às %s.", t.ServiceName, t.Time),
		AppointmentID: &apptID,
	}
	if t.ClientUserID != nil {
		clientEvt.UserID = *t.ClientUserID
	}
	if t.ClientEmail != "" {
		if msg, err := email.BuildAppointmentEmail(t.ClientEmail, email.EventAppointmentReminder, email.RoleClient, details); err == nil {
			clientEvt.RecipientEmail = t.ClientEmail
			clientEvt.EmailSubject = msg.Subject
			clientEvt.EmailContent = msg.HTMLBody
		}
	}

	providerEvt := notification.Event{
		UserID:        t.ProviderID,
		Type:          notification.EventAppointmentReminder,
		Title:         "Lembrete de Agendamento",
		Message:       fmt.Sprintf("Você tem um agendamento com %s amanhã às %s para %s.", t.ClientName, t.Time, t.ServiceName),
		AppointmentID: &apptID,
	}
	if t.ProviderEmail != "" {
		if msg, err := email.BuildAppointmentEmail(t.ProviderEmail, email.EventAppointmentReminder, email.RoleProvider, details); err == nil {
			providerEvt.RecipientEmail = t.ProviderEmail
			providerEvt.EmailSubject = msg.Subject
			providerEvt.EmailContent = msg.HTMLBody
		}
	}

	clientRes := s.dispatcher.Dispatch(ctx, clientEvt)
	providerRes := s.dispatcher.Dispatch(ctx, providerEvt)

	return AppointmentResult{
		AppointmentID:        apptID,
		ClientNotification:   clientRes.Notification != notification.OutcomeFailed,
		ClientEmail:          clientRes.Email != notification.OutcomeFailed,
		ProviderNotification: providerRes.Notification != notification.OutcomeFailed,
		ProviderEmail:        providerRes.Email != notification.OutcomeFailed,
	}
}
