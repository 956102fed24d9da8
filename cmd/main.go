package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"resume-service/internal/api"
	"resume-service/internal/config"
	"resume-service/internal/database"
	"resume-service/internal/events"
	"resume-service/internal/repository"
	"resume-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Options{
		Dialect:      cfg.DBDriver,
		DSN:          cfg.DatabaseURL,
		Retries:      cfg.DBRetries,
		RetryDelay:   cfg.DBRetryDelay,
		MaxOpenConns: cfg.DBMaxOpenConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic); kafkaWriter != nil {
		defer kafkaWriter.Close()
		publisher = events.NewKafkaPublisher(kafkaWriter)
	}

	var locker service.Locker
	if rdb := config.NewRedisClient(cfg.RedisAddr); rdb != nil {
		defer rdb.Close()
		locker = service.NewRedisLocker(rdb)
	}

	personRepo := repository.NewPersonRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	bootstrapper := service.NewBootstrapper(db, personRepo, experienceRepo, educationRepo, skillRepo, locker, cfg.SeedOnStart)
	if err := bootstrapper.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database schema")
	}

	personService := service.NewPersonService(personRepo, publisher)
	experienceService := service.NewExperienceService(experienceRepo, publisher)
	educationService := service.NewEducationService(educationRepo, publisher)
	skillService := service.NewSkillService(skillRepo, publisher)
	resumeService := service.NewResumeService(personRepo, experienceRepo, educationRepo, skillRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(cfg)))
	}

	api.RegisterRoutes(e, cfg.APIPrefix, api.Handlers{
		Person:     api.NewPersonHandler(personService, resumeService),
		Experience: api.NewExperienceHandler(experienceService),
		Education:  api.NewEducationHandler(educationService),
		Skill:      api.NewSkillHandler(skillService),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error shutting down server")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
		}
	}
}

func rateLimiterConfig(cfg *config.Config) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimit),
				Burst:     cfg.RateBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}
}
