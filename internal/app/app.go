package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres"
	activityrepo "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres/activity"
	projectrepo "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres/project"
	taskrepo "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres/task"
	entryrepo "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres/timeentry"
	userrepo "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres/user"
	"github.com/hourglass-hq/hourglass-backend/internal/auth"
	"github.com/hourglass-hq/hourglass-backend/internal/config"
	"github.com/hourglass-hq/hourglass-backend/internal/service/project"
	"github.com/hourglass-hq/hourglass-backend/internal/service/report"
	"github.com/hourglass-hq/hourglass-backend/internal/service/tracking"
	"github.com/hourglass-hq/hourglass-backend/internal/service/user"
	"github.com/hourglass-hq/hourglass-backend/internal/transport/middleware"
	"github.com/hourglass-hq/hourglass-backend/internal/transport/rest"
)

// tokenValidator adapts the JWT manager to the middleware's interface.
type tokenValidator struct {
	jwt *auth.JWTManager
}

func (v tokenValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services, and serves HTTP until the context is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	entries := entryrepo.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	users := userrepo.New(pool)
	activity := activityrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	clock := clockwork.NewRealClock()

	trackingSvc := tracking.NewService(logger, entries, projects, tasks, users, activity, txManager, clock, cfg.Tracking)
	reportSvc := report.NewService(logger, entries, projects, users, clock, cfg.Tracking)
	projectSvc := project.NewService(logger, projects, tasks)
	userSvc := user.NewService(logger, users, passwordHasher, jwtManager, clock)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(userSvc, logger),
		Entries:  rest.NewEntryHandler(trackingSvc, logger),
		Projects: rest.NewProjectHandler(projectSvc, logger),
		Reports:  rest.NewReportHandler(reportSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokenValidator{jwt: jwtManager}),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
