package notification

import (
	"github.com/appointease/appointease_backend/internal/repo"
	"github.com/appointease/appointease_backend/pkg/email"
)

// EventType identifies an appointment lifecycle event. The values double as
// the notification row's type column and the email template key.
type EventType string

const (
	EventAppointmentCreated   EventType = "appointment_created"
	EventAppointmentUpdated   EventType = "appointment_updated"
	EventAppointmentCanceled  EventType = "appointment_canceled"
	EventAppointmentReminder  EventType = "appointment_reminder"
	EventAppointmentConfirmed EventType = "appointment_confirmed"
)

// eventSpec binds everything event-specific in one place: the preference
// flag that gates its emails and the matching email template event.
type eventSpec struct {
	prefFlag func(*repo.EmailNotification) bool
	template email.Event
}

var eventRegistry = map[EventType]eventSpec{
	EventAppointmentCreated: {
		prefFlag: func(p *repo.EmailNotification) bool { return p.AppointmentCreated },
		template: email.EventAppointmentCreated,
	},
	EventAppointmentUpdated: {
		prefFlag: func(p *repo.EmailNotification) bool { return p.AppointmentUpdated },
		template: email.EventAppointmentUpdated,
	},
	EventAppointmentCanceled: {
		prefFlag: func(p *repo.EmailNotification) bool { return p.AppointmentCanceled },
		template: email.EventAppointmentCanceled,
	},
	EventAppointmentReminder: {
		prefFlag: func(p *repo.EmailNotification) bool { return p.AppointmentReminder },
		template: email.EventAppointmentReminder,
	},
	EventAppointmentConfirmed: {
		prefFlag: func(p *repo.EmailNotification) bool { return p.AppointmentConfirmed },
		template: email.EventAppointmentConfirmed,
	},
}

// KnownEvent reports whether t is a registered lifecycle event.
func KnownEvent(t EventType) bool {
	_, ok := eventRegistry[t]
	return ok
}

// TemplateEvent maps a lifecycle event to its email template key.
func TemplateEvent(t EventType) (email.Event, bool) {
	spec, ok := eventRegistry[t]
	if !ok {
		return "", false
	}
	return spec.template, true
}
