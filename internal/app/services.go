package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/appointease/appointease_backend/config"
	"github.com/appointease/appointease_backend/internal/repo"
	"github.com/appointease/appointease_backend/internal/service/appointment"
	"github.com/appointease/appointease_backend/internal/service/catalog"
	"github.com/appointease/appointease_backend/internal/service/client"
	"github.com/appointease/appointease_backend/internal/service/notification"
	"github.com/appointease/appointease_backend/internal/service/reminder"
	"github.com/appointease/appointease_backend/internal/service/schedule"
	"github.com/appointease/appointease_backend/internal/service/user"
	"github.com/appointease/appointease_backend/pkg/email"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideClientService,
		ProvideCatalogService,
		ProvideScheduleService,
		ProvideAppointmentService,
		ProvideNotificationService,
		ProvideEmailSender,
		ProvideDispatcher,
		ProvideReminderService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideClientService(db *repo.Client) client.Service {
	return client.New(db)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideScheduleService(db *repo.Client) schedule.Service {
	return schedule.New(db)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, schedSvc schedule.Service) appointment.Service {
	return appointment.New(db, nc, schedSvc)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideEmailSender(db *repo.Client, userSvc user.Service, emailClient *email.Client) notification.EmailSender {
	return notification.NewEmailSender(db, userSvc, emailClient)
}

func ProvideDispatcher(notifSvc notification.Service, sender notification.EmailSender) *notification.Dispatcher {
	return notification.NewDispatcher(notifSvc, sender)
}

func ProvideReminderService(db *repo.Client, dispatcher *notification.Dispatcher) reminder.Service {
	return reminder.New(db, dispatcher)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
