package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/appointease/appointease_backend/config"
	"github.com/appointease/appointease_backend/internal/api/http/handler"
	"github.com/appointease/appointease_backend/internal/api/http/middleware"
	"github.com/appointease/appointease_backend/internal/service/appointment"
	"github.com/appointease/appointease_backend/internal/service/catalog"
	"github.com/appointease/appointease_backend/internal/service/client"
	"github.com/appointease/appointease_backend/internal/service/notification"
	"github.com/appointease/appointease_backend/internal/service/reminder"
	"github.com/appointease/appointease_backend/internal/service/schedule"
	"github.com/appointease/appointease_backend/internal/service/user"
	pasetotoken "github.com/appointease/appointease_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	UserSvc         user.Service
	ClientSvc       client.Service
	CatalogSvc      catalog.Service
	ScheduleSvc     schedule.Service
	AppointmentSvc  appointment.Service
	NotificationSvc notification.Service
	ReminderSvc     reminder.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	cronToken := middleware.CronToken(r.p.Cfg.Reminders.CronToken)

	// 3. Initialize Handlers
	userH := handler.NewUserHandler(r.p.UserSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	scheduleH := handler.NewScheduleHandler(r.p.ScheduleSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	reminderH := handler.NewReminderHandler(r.p.ReminderSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerUserRoutes(api, userH, authRequired)
	r.registerClientRoutes(api, clientH, authRequired)
	r.registerCatalogRoutes(api, catalogH, authRequired)
	r.registerScheduleRoutes(api, scheduleH, authRequired)
	r.registerAppointmentRoutes(api, appointmentH, authRequired)
	r.registerNotificationRoutes(api, notificationH, reminderH, authRequired, cronToken)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.Redis.Ping(c.Context()).Err() == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
