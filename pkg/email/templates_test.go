package email

import (
	"strings"
	"testing"
)

var allEvents = []Event{
	EventAppointmentCreated,
	EventAppointmentUpdated,
	EventAppointmentCanceled,
	EventAppointmentReminder,
	EventAppointmentConfirmed,
}

func sampleDetails() AppointmentDetails {
	return AppointmentDetails{
		ClientName:   "Maria Silva",
		ProviderName: "Dr. João Santos",
		ServiceName:  "Consulta Médica",
		Date:         "2026-09-15",
		Time:         "14:30",
	}
}

func TestBuildAppointmentEmail_AllPairs(t *testing.T) {
	d := sampleDetails()

	for _, evt := range allEvents {
		for _, role := range []Role{RoleClient, RoleProvider} {
			msg, err := BuildAppointmentEmail("someone@example.com", evt, role, d)
			if err != nil {
				t.Fatalf("BuildAppointmentEmail(%s, %s) failed: %v", evt, role, err)
			}

			if msg.Subject == "" {
				t.Errorf("%s/%s: empty subject", evt, role)
			}
			if len(msg.To) != 1 || msg.To[0] != "someone@example.com" {
				t.Errorf("%s/%s: unexpected recipients %v", evt, role, msg.To)
			}

			body := msg.HTMLBody
			for _, want := range []string{d.ServiceName, d.Date, d.Time} {
				if !strings.Contains(body, want) {
					t.Errorf("%s/%s: body missing %q", evt, role, want)
				}
			}
		}
	}
}

func TestBuildAppointmentEmail_Counterpart(t *testing.T) {
	d := sampleDetails()

	for _, evt := range allEvents {
		// The client greeting names the client; the counterpart shown in the
		// details is the provider.
		msg, err := BuildAppointmentEmail("c@example.com", evt, RoleClient, d)
		if err != nil {
			t.Fatalf("client template %s: %v", evt, err)
		}
		if !strings.Contains(msg.HTMLBody, "Olá "+d.ClientName) {
			t.Errorf("%s/client: greeting does not address client", evt)
		}
		// Canceled client email has no details block, so the provider name is
		// allowed to be absent there.
		if evt != EventAppointmentCanceled && !strings.Contains(msg.HTMLBody, d.ProviderName) {
			t.Errorf("%s/client: body missing counterpart (provider) name", evt)
		}

		msg, err = BuildAppointmentEmail("p@example.com", evt, RoleProvider, d)
		if err != nil {
			t.Fatalf("provider template %s: %v", evt, err)
		}
		if !strings.Contains(msg.HTMLBody, "Olá "+d.ProviderName) {
			t.Errorf("%s/provider: greeting does not address provider", evt)
		}
		if !strings.Contains(msg.HTMLBody, d.ClientName) {
			t.Errorf("%s/provider: body missing counterpart (client) name", evt)
		}
	}
}

func TestBuildAppointmentEmail_Subjects(t *testing.T) {
	tests := []struct {
		evt     Event
		role    Role
		subject string
	}{
		{EventAppointmentCreated, RoleClient, "Agendamento Confirmado"},
		{EventAppointmentCreated, RoleProvider, "Novo Agendamento"},
		{EventAppointmentUpdated, RoleClient, "Agendamento Atualizado"},
		{EventAppointmentUpdated, RoleProvider, "Agendamento Atualizado"},
		{EventAppointmentCanceled, RoleClient, "Agendamento Cancelado"},
		{EventAppointmentCanceled, RoleProvider, "Agendamento Cancelado"},
		{EventAppointmentReminder, RoleClient, "Lembrete de Agendamento"},
		{EventAppointmentReminder, RoleProvider, "Lembrete de Agendamento"},
		{EventAppointmentConfirmed, RoleClient, "Agendamento Confirmado"},
		{EventAppointmentConfirmed, RoleProvider, "Agendamento Confirmado"},
	}

	for _, tt := range tests {
		got, ok := AppointmentSubject(tt.evt, tt.role)
		if !ok {
			t.Fatalf("AppointmentSubject(%s, %s): no template", tt.evt, tt.role)
		}
		if got != tt.subject {
			t.Errorf("AppointmentSubject(%s, %s) = %q, want %q", tt.evt, tt.role, got, tt.subject)
		}
	}
}

func TestBuildAppointmentEmail_UnknownEvent(t *testing.T) {
	_, err := BuildAppointmentEmail("x@example.com", Event("something_else"), RoleClient, sampleDetails())
	if err == nil {
		t.Fatal("expected error for unknown event")
	}
}
