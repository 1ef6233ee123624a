package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	"github.com/appointease/appointease_backend/pkg/email"
)

type fakeNotifs struct {
	Service

	createErr  error
	created    []CreateRequest
	allowEmail bool
	prefErr    error
}

func (f *fakeNotifs) Create(_ context.Context, req CreateRequest) (*repo.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &repo.Notification{}, nil
}

func (f *fakeNotifs) ShouldNotifyByEmail(_ context.Context, _ uuid.UUID, _ EventType) (bool, error) {
	return f.allowEmail, f.prefErr
}

type fakeSender struct {
	sendErr          error
	sent             []email.Message
	sentAppointments []*uuid.UUID
}

func (f *fakeSender) Send(_ context.Context, msg email.Message, _ EventType, appointmentID *uuid.UUID) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	f.sentAppointments = append(f.sentAppointments, appointmentID)
	return nil
}

func testEvent() Event {
	apptID := uuid.New()
	return Event{
		UserID:         uuid.New(),
		Type:           EventAppointmentCreated,
		Title:          "Novo agendamento",
		Message:        "Consulta Médica em 2026-09-15 às 14:30",
		AppointmentID:  &apptID,
		RecipientEmail: "client@example.com",
		EmailSubject:   "Agendamento Confirmado",
		EmailContent:   "<p>olá</p>",
	}
}

func TestDispatch_BothLegs(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: true}
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	res := d.Dispatch(context.Background(), testEvent())

	if res.Notification != OutcomeOK {
		t.Errorf("notification outcome = %s, want ok", res.Notification)
	}
	if res.Email != OutcomeSent {
		t.Errorf("email outcome = %s, want sent", res.Email)
	}
	if len(notifs.created) != 1 {
		t.Fatalf("created %d notifications, want 1", len(notifs.created))
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	if got := sender.sent[0].To[0]; got != "client@example.com" {
		t.Errorf("recipient = %s", got)
	}
	if sender.sentAppointments[0] == nil {
		t.Error("appointment id not passed to the sender")
	}
}

func TestDispatch_EmailOptedOut(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: false}
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	res := d.Dispatch(context.Background(), testEvent())

	if res.Notification != OutcomeOK {
		t.Errorf("notification outcome = %s, want ok", res.Notification)
	}
	if res.Email != OutcomeSkipped {
		t.Errorf("email outcome = %s, want skipped", res.Email)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(sender.sent))
	}
}

func TestDispatch_NoRecipient(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: true}
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	evt := testEvent()
	evt.RecipientEmail = ""
	res := d.Dispatch(context.Background(), evt)

	if res.Email != OutcomeSkipped {
		t.Errorf("email outcome = %s, want skipped", res.Email)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(sender.sent))
	}
}

func TestDispatch_NotificationFailureDoesNotBlockEmail(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: true, createErr: errors.New("db down")}
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	res := d.Dispatch(context.Background(), testEvent())

	if res.Notification != OutcomeFailed {
		t.Errorf("notification outcome = %s, want failed", res.Notification)
	}
	if res.Email != OutcomeSent {
		t.Errorf("email outcome = %s, want sent", res.Email)
	}
}

func TestDispatch_EmailFailureDoesNotBlockNotification(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: true}
	sender := &fakeSender{sendErr: errors.New("smtp refused")}
	d := NewDispatcher(notifs, sender)

	res := d.Dispatch(context.Background(), testEvent())

	if res.Notification != OutcomeOK {
		t.Errorf("notification outcome = %s, want ok", res.Notification)
	}
	if res.Email != OutcomeFailed {
		t.Errorf("email outcome = %s, want failed", res.Email)
	}
	if len(notifs.created) != 1 {
		t.Errorf("created %d notifications, want 1", len(notifs.created))
	}
}

func TestDispatch_NoAccount(t *testing.T) {
	notifs := &fakeNotifs{allowEmail: false} // prefs must not be consulted
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	evt := testEvent()
	evt.UserID = uuid.Nil
	res := d.Dispatch(context.Background(), evt)

	if res.Notification != OutcomeSkipped {
		t.Errorf("notification outcome = %s, want skipped", res.Notification)
	}
	if res.Email != OutcomeSent {
		t.Errorf("email outcome = %s, want sent", res.Email)
	}
	if len(notifs.created) != 0 {
		t.Errorf("created %d notifications, want 0", len(notifs.created))
	}
	if len(sender.sent) != 1 {
		t.Errorf("sent %d emails, want 1", len(sender.sent))
	}
}

func TestDispatch_PreferenceCheckFailure(t *testing.T) {
	notifs := &fakeNotifs{prefErr: errors.New("unknown notification event")}
	sender := &fakeSender{}
	d := NewDispatcher(notifs, sender)

	res := d.Dispatch(context.Background(), testEvent())

	if res.Email != OutcomeFailed {
		t.Errorf("email outcome = %s, want failed", res.Email)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(sender.sent))
	}
}
