package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/config"
	dbpkg "github.com/BruksfildServices01/softbarber/internal/db"
	"github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/infra/repository"
	"github.com/BruksfildServices01/softbarber/internal/infra/storage"
	"github.com/BruksfildServices01/softbarber/internal/notify"
	"github.com/BruksfildServices01/softbarber/internal/routes"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

func NewServeCmd(app *App) *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), app, !skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply pending migrations on boot")

	return cmd
}

func serve(parent context.Context, app *App, migrate bool) error {
	cfg, log := app.Config, app.Log

	if migrate {
		if err := dbpkg.Migrate(cfg.DBUrl, log); err != nil {
			return err
		}
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, revoker, reminders, err := redisBackends(parent, cfg, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	auditLogs := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLogs, log)

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  rdb,

		Users:        repository.NewUserGormRepository(db),
		Clients:      repository.NewClientGormRepository(db),
		Cuts:         repository.NewCutGormRepository(db),
		Appointments: repository.NewAppointmentGormRepository(db),

		Tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		Revoker:   revoker,
		Audit:     dispatcher,
		AuditLogs: auditLogs,
		Reminders: reminders,
		Storage:   objectStorage(cfg, log),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", zap.String("addr", server.Addr), zap.String("env", cfg.Env))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		// handlers are done, so nothing dispatches after this point
		if err := dispatcher.Close(shutdownCtx); err != nil {
			log.Warn("audit queue not drained", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}

	log.Info("server gracefully stopped")
	return nil
}

// redisBackends falls back to in-process revocation and logged reminders
// when REDIS_URL is empty.
func redisBackends(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
) (*redis.Client, auth.Revoker, appointment.ReminderPublisher, error) {

	if !cfg.RedisEnabled() {
		log.Warn("redis disabled, using in-memory token revocation")
		return nil, auth.NewMemoryRevoker(), notify.NewLogPublisher(log), nil
	}

	rdb, err := dbpkg.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	return rdb, auth.NewRedisRevoker(rdb), notify.NewRedisPublisher(rdb), nil
}

func objectStorage(cfg *config.Config, log *zap.Logger) storage.ObjectStorage {
	if !cfg.StorageEnabled() {
		log.Warn("S3_BUCKET not set, avatar uploads disabled")
		return storage.Disabled{}
	}

	return storage.NewS3(storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
	})
}
