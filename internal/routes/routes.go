package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/config"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/handlers"
	"github.com/BruksfildServices01/softbarber/internal/infra/storage"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/softbarber/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/softbarber/internal/usecase/auth"
	ucBarber "github.com/BruksfildServices01/softbarber/internal/usecase/barber"
	ucClient "github.com/BruksfildServices01/softbarber/internal/usecase/client"
	ucCut "github.com/BruksfildServices01/softbarber/internal/usecase/cut"
	ucStats "github.com/BruksfildServices01/softbarber/internal/usecase/stats"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

// Deps are the long-lived collaborators the router is built from. DB and
// Redis are only used by the health check and may be nil in tests.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *gorm.DB
	Redis  *redis.Client

	Users        user.Repository
	Clients      client.Repository
	Cuts         cut.Repository
	Appointments appointment.Repository

	Tokens    *auth.TokenManager
	Revoker   auth.Revoker
	Audit     audit.Recorder
	AuditLogs *audit.Logger
	Reminders appointment.ReminderPublisher
	Storage   storage.ObjectStorage
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)
	emails := validators.EmailChecker{CheckDomain: cfg.CheckEmailDomain}
	clock := ucStats.NewClock(loc)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAuth.NewRegister(d.Users, d.Tokens, emails, cfg.AllowAdminSignup, d.Audit),
		ucAuth.NewLogin(d.Users, d.Tokens),
		ucAuth.NewLogout(d.Revoker),
		ucAuth.NewGetSession(d.Users),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(d.Appointments, d.Clients, d.Users, d.Audit, loc),
		ucAppointment.NewListAppointments(d.Appointments, loc),
		ucAppointment.NewGetAppointment(d.Appointments),
		ucAppointment.NewUpdateStatus(d.Appointments, d.Audit),
		ucAppointment.NewSendReminder(d.Appointments, d.Reminders, d.Log),
	)

	clientHandler := handlers.NewClientHandler(
		ucClient.NewSearchClients(d.Clients),
		ucClient.NewCreateClient(d.Clients, d.Audit),
		ucClient.NewGetClient(d.Clients),
		ucClient.NewUpdateClient(d.Clients, d.Audit),
		ucClient.NewClientHistory(d.Clients, d.Cuts),
	)

	cutHandler := handlers.NewCutHandler(
		ucCut.NewCreateCut(d.Cuts, d.Clients, d.Users, d.Audit, d.Log),
		ucCut.NewListCuts(d.Cuts, loc),
	)

	statsHandler := handlers.NewStatsHandler(
		ucStats.NewPeriodStats(d.Cuts, clock),
		ucStats.NewBarberBreakdown(d.Cuts, d.Users, clock),
		ucStats.NewDashboard(d.Cuts, d.Users, clock),
		ucStats.NewMyStats(d.Cuts, clock),
		ucStats.NewFrequentClients(d.Cuts, clock),
	)

	barberHandler := handlers.NewBarberHandler(
		ucBarber.NewListBarbers(d.Users),
		ucBarber.NewCreateBarber(d.Users, emails, d.Audit),
		ucBarber.NewUpdateBarber(d.Users, emails, d.Audit),
		ucBarber.NewSetBarberActive(d.Users, d.Audit),
		ucBarber.NewUploadAvatar(d.Users, d.Storage, d.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, loc)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Redis)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens, d.Revoker))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/auth/me", authHandler.Me)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.POST("/appointments/:id/reminder", appointmentHandler.SendReminder)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.GET("/clients/:id/history", clientHandler.History)

			// ------------------------------
			// CUTS
			// ------------------------------
			secured.GET("/cuts", cutHandler.List)
			secured.POST("/cuts",
				middleware.RequireRoles(access.RoleBarbero, access.RoleAdmin),
				cutHandler.Create,
			)

			// ------------------------------
			// STATS
			// ------------------------------
			secured.GET("/stats/me", statsHandler.Me)
			secured.GET("/stats/clients/frequent", statsHandler.FrequentClients)

			secured.GET("/barbers", barberHandler.Directory)
		}

		// ------------------------------
		// 🛡️ ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(
			middleware.AuthMiddleware(d.Tokens, d.Revoker),
			middleware.RequireRoles(access.RoleAdmin),
		)
		{
			admin.GET("/stats", statsHandler.Dashboard)
			admin.GET("/stats/daily", statsHandler.Period(stats.Daily))
			admin.GET("/stats/weekly", statsHandler.Period(stats.Weekly))
			admin.GET("/stats/monthly", statsHandler.Period(stats.Monthly))
			admin.GET("/stats/barbers", statsHandler.Barbers)

			admin.GET("/admin/barberos", barberHandler.List)
			admin.POST("/admin/barberos", barberHandler.Create)
			admin.PUT("/admin/barberos/:id", barberHandler.Update)
			admin.DELETE("/admin/barberos/:id", barberHandler.Deactivate)
			admin.POST("/admin/barberos/:id/avatar", barberHandler.UploadAvatar)
			admin.PUT("/admin/bloquear/:id", barberHandler.Deactivate)
			admin.PUT("/admin/activar/:id", barberHandler.Activate)

			admin.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
