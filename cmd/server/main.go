package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	appservices "github.com/irsath0710/clazzy-outfit-advisor/internal/application/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/usecases"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/config"
	domainservices "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/infrastructure/api"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/infrastructure/external"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/infrastructure/repositories"
	infraservices "github.com/irsath0710/clazzy-outfit-advisor/internal/infrastructure/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
)

func main() {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.Logging.ToLogging())
	printBanner(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	cancel()
	if err != nil {
		logging.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logging.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize infrastructure layer
	selectionRepo, sweeper, err := repositories.NewSelectionRepository(ctx, cfg.Store, cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to open %s selection store: %w", cfg.Store.Driver, err)
	}
	defer selectionRepo.Close()

	// Initialize domain layer
	recommender := domainservices.NewRecommendationDomainService()

	var adviceService *domainservices.AdviceDomainService
	if cfg.Advisor.Enabled {
		pool := infraservices.NewGenAIClientPool(cfg.Advisor.APIKey)
		advisor := external.NewGeminiStyleAdvisor(pool, cfg.Advisor.Model, cfg.Advisor.Timeout)
		defer advisor.Close()
		adviceService = domainservices.NewAdviceDomainService(advisor)
	}

	// Initialize application layer
	selectionUseCase := usecases.NewSelectionUseCase(selectionRepo, recommender)
	recommendationUseCase := usecases.NewRecommendationUseCase(recommender)
	adviceUseCase := usecases.NewAdviceUseCase(selectionUseCase, recommender, adviceService)
	formService := appservices.NewFormService(cfg.Server.MaxUploadBytes())

	// Initialize API layer
	sessions := api.NewSessionManager(cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)
	router := api.NewRouter(
		api.RouterConfig{
			MetricsEnabled:    cfg.Metrics.Enabled,
			MetricsPath:       cfg.Metrics.Path,
			RateLimitEnabled:  cfg.RateLimit.Enabled,
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			AllowedOrigins:    cfg.CORS.AllowedOrigins,
		},
		api.NewOutfitHandler(selectionUseCase, adviceUseCase, formService, sessions),
		api.NewAPIHandler(selectionUseCase, recommendationUseCase, adviceUseCase, sessions),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	supervisor := infraservices.NewSupervisor("clazzy", logging.NewSlogLogger(), cfg.Server.ShutdownTimeout)
	supervisor.Add(infraservices.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if sweeper != nil {
		supervisor.Add(sweeper)
	}

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("store", cfg.Store.Driver).
		Bool("advisor", adviceUseCase.Enabled()).
		Msg("starting server")

	err = supervisor.Serve(ctx)

	if unstopped, _ := supervisor.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service failed to stop")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
