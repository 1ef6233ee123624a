package notification

import (
	"testing"

	"github.com/appointease/appointease_backend/internal/repo"
	"github.com/appointease/appointease_backend/pkg/email"
)

func TestEventRegistry_Complete(t *testing.T) {
	events := []EventType{
		EventAppointmentCreated,
		EventAppointmentUpdated,
		EventAppointmentCanceled,
		EventAppointmentReminder,
		EventAppointmentConfirmed,
	}

	if len(eventRegistry) != len(events) {
		t.Fatalf("registry has %d entries, want %d", len(eventRegistry), len(events))
	}
	for _, evt := range events {
		if !KnownEvent(evt) {
			t.Errorf("%s not registered", evt)
		}
	}
	if KnownEvent(EventType("payment_received")) {
		t.Error("unregistered event reported as known")
	}
}

func TestEventRegistry_PrefFlags(t *testing.T) {
	// Each event must read its own flag, not a neighbor's.
	prefs := &repo.EmailNotification{
		AppointmentCreated:   true,
		AppointmentUpdated:   false,
		AppointmentCanceled:  true,
		AppointmentReminder:  false,
		AppointmentConfirmed: true,
	}

	want := map[EventType]bool{
		EventAppointmentCreated:   true,
		EventAppointmentUpdated:   false,
		EventAppointmentCanceled:  true,
		EventAppointmentReminder:  false,
		EventAppointmentConfirmed: true,
	}

	for evt, expected := range want {
		if got := eventRegistry[evt].prefFlag(prefs); got != expected {
			t.Errorf("%s flag = %v, want %v", evt, got, expected)
		}
	}
}

func TestTemplateEvent(t *testing.T) {
	tmpl, ok := TemplateEvent(EventAppointmentReminder)
	if !ok {
		t.Fatal("reminder has no template event")
	}
	if tmpl != email.EventAppointmentReminder {
		t.Errorf("template = %s", tmpl)
	}

	if _, ok := TemplateEvent(EventType("nope")); ok {
		t.Error("unknown event mapped to a template")
	}
}
