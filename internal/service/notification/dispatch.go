package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/pkg/email"
)

// Event is one notification to fan out: an in-app row for the user plus,
// when the user's preferences allow it, an email. A zero UserID means the
// recipient has no dashboard account: the in-app leg is skipped and the
// email leg runs with the default opted-in preferences.
type Event struct {
	UserID        uuid.UUID
	Type          EventType
	Title         string
	Message       string
	AppointmentID *uuid.UUID
	Metadata      map[string]any

	// Email leg; leave RecipientEmail empty to skip it entirely.
	RecipientEmail string
	EmailSubject   string
	EmailContent   string
}

type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// DispatchResult reports each leg independently. Either leg failing does
// not stop the other.
type DispatchResult struct {
	Notification Outcome `json:"notification"`
	Email        Outcome `json:"email"`
}

// Dispatcher fans one event out to the in-app inbox and the email channel.
type Dispatcher struct {
	notifs Service
	sender EmailSender
}

func NewDispatcher(notifs Service, sender EmailSender) *Dispatcher {
	return &Dispatcher{notifs: notifs, sender: sender}
}

// Dispatch runs both legs and never returns an error: callers fire events
// from request paths and workers where a notification failure must not
// fail the triggering operation. Failures are logged and reflected in the
// result.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) DispatchResult {
	res := DispatchResult{
		Notification: OutcomeOK,
		Email:        OutcomeSkipped,
	}

	if evt.UserID == uuid.Nil {
		res.Notification = OutcomeSkipped
		if evt.RecipientEmail == "" {
			return res
		}
		res.Email = d.sendEmail(ctx, evt)
		return res
	}

	if _, err := d.notifs.Create(ctx, CreateRequest{
		UserID:        evt.UserID,
		Type:          evt.Type,
		Title:         evt.Title,
		Message:       evt.Message,
		AppointmentID: evt.AppointmentID,
		Metadata:      evt.Metadata,
	}); err != nil {
		slog.Warn("dispatch: create notification failed",
			"type", evt.Type, "user_id", evt.UserID, "err", err)
		res.Notification = OutcomeFailed
	}

	if evt.RecipientEmail == "" {
		return res
	}

	allowed, err := d.notifs.ShouldNotifyByEmail(ctx, evt.UserID, evt.Type)
	if err != nil {
		slog.Warn("dispatch: preference check failed",
			"type", evt.Type, "user_id", evt.UserID, "err", err)
		res.Email = OutcomeFailed
		return res
	}
	if !allowed {
		return res
	}

	res.Email = d.sendEmail(ctx, evt)
	return res
}

func (d *Dispatcher) sendEmail(ctx context.Context, evt Event) Outcome {
	msg := email.Message{
		To:       []string{evt.RecipientEmail},
		Subject:  evt.EmailSubject,
		HTMLBody: evt.EmailContent,
	}
	if err := d.sender.Send(ctx, msg, evt.Type, evt.AppointmentID); err != nil {
		slog.Warn("dispatch: email send failed",
			"type", evt.Type, "recipient", evt.RecipientEmail, "err", err)
		return OutcomeFailed
	}
	return OutcomeSent
}
