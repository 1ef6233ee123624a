package reminder

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/service/notification"
)

type fakeDispatcher struct {
	events  []notification.Event
	results map[uuid.UUID]notification.DispatchResult // keyed by event UserID
}

func (f *fakeDispatcher) Dispatch(_ context.Context, evt notification.Event) notification.DispatchResult {
	f.events = append(f.events, evt)
	if res, ok := f.results[evt.UserID]; ok {
		return res
	}
	return notification.DispatchResult{
		Notification: notification.OutcomeOK,
		Email:        notification.OutcomeSent,
	}
}

func testTarget() (Appointment, uuid.UUID, uuid.UUID) {
	clientUser := uuid.New()
	provider := uuid.New()
	return Appointment{
		ID:            uuid.New(),
		Date:          "2026-09-15",
		Time:          "14:30",
		ServiceName:   "Consulta Médica",
		ClientName:    "Maria Silva",
		ClientEmail:   "maria@example.com",
		ClientUserID:  &clientUser,
		ProviderID:    provider,
		ProviderName:  "Dr. João Santos",
		ProviderEmail: "joao@example.com",
	}, clientUser, provider
}

func TestRemind_DispatchesBothParties(t *testing.T) {
	target, clientUser, provider := testTarget()
	fd := &fakeDispatcher{}
	s := &reminderService{dispatcher: fd}

	res := s.remind(context.Background(), target)

	if len(fd.events) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(fd.events))
	}

	clientEvt, providerEvt := fd.events[0], fd.events[1]
	if clientEvt.UserID != clientUser {
		t.Errorf("first event user = %s, want client user", clientEvt.UserID)
	}
	if providerEvt.UserID != provider {
		t.Errorf("second event user = %s, want provider", providerEvt.UserID)
	}

	for _, evt := range fd.events {
		if evt.Type != notification.EventAppointmentReminder {
			t.Errorf("event type = %s", evt.Type)
		}
		if evt.Title != "Lembrete de Agendamento" {
			t.Errorf("title = %q", evt.Title)
		}
		if evt.EmailSubject != "Lembrete de Agendamento" {
			t.Errorf("email subject = %q", evt.EmailSubject)
		}
		if evt.AppointmentID == nil || *evt.AppointmentID != target.ID {
			t.Error("event missing appointment id")
		}
	}

	if !strings.Contains(clientEvt.Message, target.ServiceName) {
		t.Errorf("client message missing service: %q", clientEvt.Message)
	}
	if !strings.Contains(providerEvt.Message, target.ClientName) {
		t.Errorf("provider message missing client name: %q", providerEvt.Message)
	}
	if !strings.Contains(clientEvt.EmailContent, target.ProviderName) {
		t.Error("client email missing provider name")
	}

	if !res.ClientNotification || !res.ClientEmail || !res.ProviderNotification || !res.ProviderEmail {
		t.Errorf("result = %+v, want all true", res)
	}
}

func TestRemind_ClientWithoutAccount(t *testing.T) {
	target, _, _ := testTarget()
	target.ClientUserID = nil
	fd := &fakeDispatcher{}
	s := &reminderService{dispatcher: fd}

	s.remind(context.Background(), target)

	if fd.events[0].UserID != uuid.Nil {
		t.Errorf("client event user = %s, want zero", fd.events[0].UserID)
	}
	if fd.events[0].RecipientEmail != target.ClientEmail {
		t.Error("client email leg should still carry the address")
	}
}

func TestRemind_ClientWithoutEmail(t *testing.T) {
	target, _, _ := testTarget()
	target.ClientEmail = ""
	fd := &fakeDispatcher{}
	s := &reminderService{dispatcher: fd}

	s.remind(context.Background(), target)

	if fd.events[0].RecipientEmail != "" {
		t.Error("client event should have no email leg")
	}
	if fd.events[1].RecipientEmail != target.ProviderEmail {
		t.Error("provider email leg missing")
	}
}

func TestRemind_PartialFailure(t *testing.T) {
	target, clientUser, _ := testTarget()
	fd := &fakeDispatcher{
		results: map[uuid.UUID]notification.DispatchResult{
			clientUser: {
				Notification: notification.OutcomeFailed,
				Email:        notification.OutcomeSkipped,
			},
		},
	}
	s := &reminderService{dispatcher: fd}

	res := s.remind(context.Background(), target)

	if res.ClientNotification {
		t.Error("client notification should report failure")
	}
	if !res.ClientEmail {
		t.Error("skipped email leg should not count as failure")
	}
	if !res.ProviderNotification || !res.ProviderEmail {
		t.Error("provider legs should succeed")
	}
}

func TestRemindAll(t *testing.T) {
	t1, _, _ := testTarget()
	t2, _, _ := testTarget()
	fd := &fakeDispatcher{}
	s := &reminderService{dispatcher: fd}

	results := s.remindAll(context.Background(), []Appointment{t1, t2})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if len(fd.events) != 4 {
		t.Errorf("dispatched %d events, want 4", len(fd.events))
	}
	if results[0].AppointmentID != t1.ID || results[1].AppointmentID != t2.ID {
		t.Error("results out of order")
	}
}
