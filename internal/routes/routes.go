package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/agendabarber/agenda-api/internal/audit"
	"github.com/agendabarber/agenda-api/internal/cache"
	"github.com/agendabarber/agenda-api/internal/config"
	"github.com/agendabarber/agenda-api/internal/handlers"
	infraRepo "github.com/agendabarber/agenda-api/internal/infra/repository"
	"github.com/agendabarber/agenda-api/internal/middleware"
	ucBooking "github.com/agendabarber/agenda-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var availCache *cache.Availability
	if redisClient != nil {
		availCache = cache.NewAvailability(
			redisClient,
			time.Duration(cfg.CacheTTLSec)*time.Second,
		)
	}

	publicLimiter := middleware.NewRateLimiter(cfg.PublicRateRPS, cfg.PublicRateBurst)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, availCache)

	createBookingUC := ucBooking.NewCreatePublicBooking(
		bookingRepo,
		auditDispatcher,
		availCache,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, availCache)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		listByDateUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
	)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		availabilityUC,
		createBookingUC,
	)

	superAdminHandler := handlers.NewSuperAdminHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (por slug do tenant)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetBookingPage)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST(
				"/:slug/appointments",
				publicLimiter.Middleware(),
				publicHandler.CreateAppointment,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// API PRIVADA (painel do dono)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			owner := secured.Group("/me")
			owner.Use(middleware.RequireRole(middleware.RoleOwner))
			{
				owner.GET("/barbershop", barbershopHandler.GetMeBarbershop)
				owner.PATCH("/barbershop", barbershopHandler.UpdateMeBarbershop)

				owner.GET("/barbers", barberHandler.List)
				owner.POST("/barbers", barberHandler.Create)
				owner.PATCH("/barbers/:id", barberHandler.Update)

				owner.GET("/services", serviceHandler.List)
				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)

				owner.GET("/appointments", appointmentHandler.ListByDate)
				owner.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				owner.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				owner.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// SUPER ADMIN (provisionamento)
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleSuperAdmin))
			{
				admin.POST("/owners", superAdminHandler.CreateOwner)
				admin.GET("/owners", superAdminHandler.ListOwners)
			}
		}
	}
}
