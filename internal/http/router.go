package http

import (
	"log/slog"
	"time"

	"github.com/chaiwat/seminarhub/internal/config"
	"github.com/chaiwat/seminarhub/internal/http/handlers"
	"github.com/chaiwat/seminarhub/internal/http/middlewares"
	"github.com/chaiwat/seminarhub/internal/notify"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20

// Deps carries everything the router wires into handlers. All fields except
// the repositories may be nil; the router degrades to a log-only setup.
type Deps struct {
	Registrations RegistrationsRepo
	Schedules     ScheduleRepo
	Catalog       handlers.CatalogReader
	Deliveries    handlers.DeliveryRecorder

	SMS   notify.SMSDispatcher
	Email notify.EmailDispatcher

	Prom *observability.Prom

	PingDB    func() error
	PingCache func() error
}

// ScheduleRepo is the union of the read interfaces the schedule-backed
// handlers need.
type ScheduleRepo interface {
	handlers.ScheduleReader
	handlers.ScheduleLister
}

type RegistrationsRepo interface {
	handlers.RegistrationCreator
	handlers.RegistrationReader
}

func NewRouter(cfg config.Config, log *slog.Logger, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(otelgin.Middleware("seminarhub"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	// health
	h := handlers.NewHealthHandler(deps.PingDB, deps.PingCache)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// reference data for the wizard
	refdataHandler := handlers.NewRefdataHandler(deps.Schedules, deps.Catalog)

	r.GET("/api/schedule", refdataHandler.Schedule)
	r.GET("/api/rooms", refdataHandler.Rooms)
	r.GET("/api/reference", refdataHandler.Reference)

	lookup := handlers.NewRegistrationLookup(deps.Registrations)
	r.GET("/api/registrations/:id", lookup.Get)

	// write endpoints share a rate limiter and the JSON body guard
	registerHandler := handlers.NewRegisterHandler(deps.Registrations, cfg.DefaultLocale)
	notifyHandler := handlers.NewNotifyHandler(deps.Schedules, deps.SMS, deps.Email, deps.Deliveries, deps.Prom, log)

	limiter := middlewares.NewRateLimiter(30, time.Minute)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON())
	api.Use(limiter.RateLimiterMiddleware(middlewares.KeyByIP))

	api.POST("/register", registerHandler.Register)
	api.POST("/send-sms", notifyHandler.SendSMS)
	api.POST("/send-email", notifyHandler.SendEmail)

	return r
}
