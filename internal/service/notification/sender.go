package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	entlog "github.com/appointease/appointease_backend/internal/repo/emaillog"
	"github.com/appointease/appointease_backend/internal/service/user"
	"github.com/appointease/appointease_backend/pkg/email"
)

// EmailSender delivers one event email and records the attempt.
// appointmentID may be nil for emails not tied to an appointment.
type EmailSender interface {
	Send(ctx context.Context, msg email.Message, evt EventType, appointmentID *uuid.UUID) error
}

type emailSender struct {
	db     *repo.Client
	users  user.Service
	client *email.Client
}

// NewEmailSender wraps the SMTP client with email_logs bookkeeping. Every
// attempt leaves a log row; a disabled client counts as sent because
// nothing went wrong on our side.
func NewEmailSender(db *repo.Client, users user.Service, client *email.Client) EmailSender {
	return &emailSender{db: db, users: users, client: client}
}

func (s *emailSender) Send(ctx context.Context, msg email.Message, evt EventType, appointmentID *uuid.UUID) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}

	sendErr := s.client.Send(ctx, msg)
	if errors.As(sendErr, &email.ErrDisabled{}) {
		sendErr = nil
	}

	logErr := s.appendLog(ctx, msg, evt, appointmentID, sendErr)

	if sendErr != nil {
		return fmt.Errorf("send %s email: %w", evt, sendErr)
	}
	if logErr != nil {
		return fmt.Errorf("log %s email: %w", evt, logErr)
	}
	return nil
}

func (s *emailSender) appendLog(ctx context.Context, msg email.Message, evt EventType, appointmentID *uuid.UUID, sendErr error) error {
	recipient := msg.To[0]

	content := msg.HTMLBody
	if content == "" {
		content = msg.TextBody
	}

	c := s.db.EmailLog.Create().
		SetRecipient(recipient).
		SetSubject(msg.Subject).
		SetContent(content).
		SetType(string(evt)).
		SetNillableAppointmentID(appointmentID)

	if sendErr != nil {
		c = c.SetStatus(entlog.StatusFailed).
			SetError(sendErr.Error())
	} else {
		c = c.SetStatus(entlog.StatusSent)
	}

	// Best effort: the recipient may not have an account.
	u, err := s.users.GetByEmail(ctx, recipient)
	if err == nil {
		c = c.SetUserID(u.ID)
	} else if !errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("resolve recipient: %w", err)
	}

	return c.Exec(ctx)
}
