package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/appointease/appointease_backend/internal/repo"
	entappt "github.com/appointease/appointease_backend/internal/repo/appointment"
	entcustomer "github.com/appointease/appointease_backend/internal/repo/customer"
	entservice "github.com/appointease/appointease_backend/internal/repo/service"
	entuser "github.com/appointease/appointease_backend/internal/repo/user"
	"github.com/appointease/appointease_backend/internal/service/notification"
	"github.com/appointease/appointease_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	NC         *nats.Conn
	DB         *repo.Client
	Dispatcher *notification.Dispatcher
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p.NC, p.DB, p.Dispatcher)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

// verbEvents maps the lifecycle verb in the NATS subject to the
// notification event. Reminders are dispatched synchronously by the
// reminder driver, so they never pass through here.
var verbEvents = map[string]notification.EventType{
	"created":   notification.EventAppointmentCreated,
	"updated":   notification.EventAppointmentUpdated,
	"canceled":  notification.EventAppointmentCanceled,
	"confirmed": notification.EventAppointmentConfirmed,
}

func startAppointmentWorker(nc *nats.Conn, db *repo.Client, dispatcher *notification.Dispatcher) {
	_, err := nc.Subscribe("appointease.appointment.*.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		evt, ok := verbEvents[parts[2]]
		if !ok {
			return
		}
		apptID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		if err := notifyAppointment(context.Background(), db, dispatcher, apptID, evt); err != nil {
			slog.Warn("appointment_worker: notify failed",
				"appointment_id", apptID, "event", evt, "err", err)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe failed", "err", err)
	}
}

// notifyAppointment fans one lifecycle event out to the appointment's
// client and provider.
func notifyAppointment(ctx context.Context, db *repo.Client, dispatcher *notification.Dispatcher, apptID uuid.UUID, evt notification.EventType) error {
	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load appointment: %w", err)
	}

	customer, err := db.Customer.Query().
		Where(entcustomer.ID(appt.ClientID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}

	svc, err := db.Service.Query().
		Where(entservice.ID(appt.ServiceID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load service: %w", err)
	}

	provider, err := db.User.Query().
		Where(entuser.ID(appt.ProviderID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load provider: %w", err)
	}

	providerName := ""
	if provider.Name != nil {
		providerName = *provider.Name
	}
	details := email.AppointmentDetails{
		ClientName:   customer.Name,
		ProviderName: providerName,
		ServiceName:  svc.Name,
		Date:         appt.Date,
		Time:         appt.Time,
	}
	tmplEvt, ok := notification.TemplateEvent(evt)
	if !ok {
		return fmt.Errorf("no template for event %s", evt)
	}

	clientEvt := notification.Event{
		Type:          evt,
		Message:       clientMessage(evt, details),
		AppointmentID: &appt.ID,
	}
	if customer.UserID != nil {
		clientEvt.UserID = *customer.UserID
	}
	if title, ok := email.AppointmentSubject(tmplEvt, email.RoleClient); ok {
		clientEvt.Title = title
	}
	if customer.Email != nil && *customer.Email != "" {
		if msg, bErr := email.BuildAppointmentEmail(*customer.Email, tmplEvt, email.RoleClient, details); bErr == nil {
			clientEvt.RecipientEmail = *customer.Email
			clientEvt.EmailSubject = msg.Subject
			clientEvt.EmailContent = msg.HTMLBody
		}
	}

	providerEvt := notification.Event{
		UserID:        appt.ProviderID,
		Type:          evt,
		Message:       providerMessage(evt, details),
		AppointmentID: &appt.ID,
	}
	if title, ok := email.AppointmentSubject(tmplEvt, email.RoleProvider); ok {
		providerEvt.Title = title
	}
	if msg, bErr := email.BuildAppointmentEmail(provider.Email, tmplEvt, email.RoleProvider, details); bErr == nil {
		providerEvt.RecipientEmail = provider.Email
		providerEvt.EmailSubject = msg.Subject
		providerEvt.EmailContent = msg.HTMLBody
	}

	dispatcher.Dispatch(ctx, clientEvt)
	dispatcher.Dispatch(ctx, providerEvt)
	return nil
}

func clientMessage(evt notification.EventType, d email.AppointmentDetails) string {
	switch evt {
	case notification.EventAppointmentCreated:
		return fmt.Sprintf("Seu agendamento de %s em %s às %s foi agendado.", d.ServiceName, d.Date, d.Time)
	case notification.EventAppointmentUpdated:
		return fmt.Sprintf("Seu agendamento de %s foi atualizado para %s às %s.", d.ServiceName, d.Date, d.Time)
	case notification.EventAppointmentCanceled:
		return fmt.Sprintf("Seu agendamento de %s em %s às %s foi cancelado.", d.ServiceName, d.Date, d.Time)
	case notification.EventAppointmentConfirmed:
		return fmt.Sprintf("Seu agendamento de %s em %s às %s foi confirmado.", d.ServiceName, d.Date, d.Time)
	}
	return ""
}

func providerMessage(evt notification.EventType, d email.AppointmentDetails) string {
	switch evt {
	case notification.EventAppointmentCreated:
		return fmt.Sprintf("Novo agendamento com %s em %s às %s para %s.", d.ClientName, d.Date, d.Time, d.ServiceName)
	case notification.EventAppointmentUpdated:
		return fmt.Sprintf("O agendamento com %s foi atualizado para %s às %s.", d.ClientName, d.Date, d.Time)
	case notification.EventAppointmentCanceled:
		return fmt.Sprintf("O agendamento com %s em %s às %s foi cancelado.", d.ClientName, d.Date, d.Time)
	case notification.EventAppointmentConfirmed:
		return fmt.Sprintf("O agendamento com %s em %s às %s foi confirmado.", d.ClientName, d.Date, d.Time)
	}
	return ""
}
