package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/config"
	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/handler"
	"github.com/ecodive/backoffice-server-go/internal/jobs"
	"github.com/ecodive/backoffice-server-go/internal/middleware"
	"github.com/ecodive/backoffice-server-go/internal/redis"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/service"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogFormat(cfg.LogFormat)
	setLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("database connected")

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	teamRepo := repository.NewTeamMemberRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	clubRepo := repository.NewDiveClubRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	activityRepo := repository.NewActivityRepository(db.DB)
	supportRepo := repository.NewSupportMessageRepository(db.DB)
	statsRepo := repository.NewStatsRepository(db.DB)

	activityLogger := service.NewActivityLogger(activityRepo)
	authService := service.NewAuthService(teamRepo)
	teamService := service.NewTeamService(teamRepo, activityLogger)
	userService := service.NewUserService(userRepo, activityLogger)
	clubService := service.NewDiveClubService(clubRepo, activityLogger)
	calendarService := service.NewCalendarService(eventRepo, activityLogger)
	dashboardService := service.NewDashboardService(statsRepo)
	supportService := service.NewSupportService(supportRepo)
	rateLimiter := service.NewRateLimiter(redisClient.Client, true)

	if cfg.SessionTTL == 0 {
		log.Info().Msg("session tokens are issued without expiry")
	}
	tokens := session.NewManager(
		cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL,
		session.NewRedisRevocationStore(redisClient.Client),
	)

	isProduction := cfg.IsProduction()
	apiAuth := middleware.NewAuthMiddleware(tokens)
	viewAuth := middleware.NewViewAuthMiddleware(tokens)
	loginLimiter := middleware.NewLoginRateLimiter(rateLimiter, cfg.LoginRateLimit, cfg.LoginRateWindow)
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(isProduction, cfg.CORSAllowedOrigins...)

	api := &handler.API{
		Auth:       handler.NewAuthHandler(authService, tokens, activityLogger, loginLimiter.Handler, cfg.SessionTTL, isProduction),
		Team:       handler.NewTeamHandler(teamService),
		Users:      handler.NewUserHandler(userService),
		DiveClubs:  handler.NewDiveClubHandler(clubService),
		Calendar:   handler.NewCalendarHandler(calendarService),
		Activities: handler.NewActivityHandler(activityLogger),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Support:    handler.NewSupportHandler(supportService),
	}
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"postgres": db,
		"redis":    redisClient,
	})
	spaHandler := handler.NewSPAHandler(cfg.StaticDir, handler.DefaultViewRoles)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(securityHeadersMiddleware.Handler)

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Mount("/", api.Routes(apiAuth.Handler))
	})

	r.With(viewAuth.Handler).Handle("/*", spaHandler)

	statsJob := jobs.NewStatsJob(statsRepo, config.StatsRefreshInterval)
	statsJob.Start()
	defer statsJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.AppEnv).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// setLogFormat switches to JSON lines for log shippers; anything else keeps
// the console writer.
func setLogFormat(format string) {
	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
