package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/gammazero/workerpool"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/spendsnap/spendsnap/pkg/accounts"
	"github.com/spendsnap/spendsnap/pkg/convstore"
	"github.com/spendsnap/spendsnap/pkg/extractor"
	"github.com/spendsnap/spendsnap/pkg/firefly"
	"github.com/spendsnap/spendsnap/pkg/geocode"
	"github.com/spendsnap/spendsnap/pkg/notifications"
	"github.com/spendsnap/spendsnap/pkg/orchestrator"
	"github.com/spendsnap/spendsnap/pkg/pipeline"
	"github.com/spendsnap/spendsnap/pkg/statement"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse config")
	}

	ctx := logger.WithContext(context.Background())

	registry, err := accounts.LoadRegistry(cfg.AccountsConfigPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load account registry")
	}

	detector := accounts.NewDetector(registry, accounts.DetectorConfig{
		AutoSelectThreshold: cfg.AutoSelectThreshold,
		MaxRecent:           cfg.MaxRecentAccounts,
	})

	store := convstore.New()

	fireflySvc := firefly.NewFirefly(cfg.FireflyAPIKey, cfg.FireflyURL, req.C())
	tgNotifier := notifications.NewTelegram(cfg.TelegramBotToken, req.C())
	geocoder := geocode.NewNominatim(cfg.NominatimURL, req.C())

	extractorSvc, err := extractor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create extractor")
	}

	crossCheckAccounts(ctx, registry, fireflySvc)

	pipelineSvc := pipeline.NewPipeline(&pipeline.Config{
		Registry:      registry,
		Extractor:     extractorSvc,
		Geocoder:      geocoder,
		Budget:        fireflySvc,
		MinConfidence: cfg.MinConfidence,
	})

	orchestratorSvc := orchestrator.NewOrchestrator(&orchestrator.Config{
		Store:         store,
		Detector:      detector,
		Registry:      registry,
		Extractor:     extractorSvc,
		Budget:        fireflySvc,
		Geocoder:      geocoder,
		Chat:          tgNotifier,
		MinConfidence: cfg.MinConfidence,
	})

	pool := workerpool.New(cfg.Workers)
	defer pool.StopWait()

	scheduler := cron.New()
	startJobs(ctx, scheduler, cfg, store, fireflySvc)
	scheduler.Start()
	defer scheduler.Stop()

	r := mux.NewRouter()
	r.Handle("/api/automation/webhook", NewAutomationHandler(
		pipelineSvc, orchestratorSvc, tgNotifier, pool, logger, cfg.TelegramChatID, cfg.APIKey))
	r.Handle("/api/telegram/webhook", NewTelegramHandler(
		orchestratorSvc, tgNotifier, pool, logger, cfg.APIKey))
	r.Handle("/healthz", NewHealthHandler(map[string]Validator{
		"extractor": extractorSvc,
		"firefly":   fireflySvc,
	}))

	listenAddr := cfg.ListenAddr
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", listenAddr).Msg("listening")
	logger.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func startJobs(
	ctx context.Context,
	scheduler *cron.Cron,
	cfg Config,
	store *convstore.Store,
	fireflySvc *firefly.Firefly,
) {
	logger := zerolog.Ctx(ctx)

	_, err := scheduler.AddFunc(cfg.SweepSchedule, func() {
		if removed := store.SweepExpired(cfg.DraftMaxAge); removed > 0 {
			logger.Info().Int("removed", removed).Msg("swept expired drafts")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("bad sweep schedule")
	}

	statements, err := statement.LoadDefinitions(cfg.AccountsConfigPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load statement definitions")
	}

	if len(statements) == 0 {
		return
	}

	job := statement.NewJob(fireflySvc, statements)
	_, err = scheduler.AddFunc(cfg.StatementSchedule, func() {
		if jobErr := job.Run(ctx, time.Now()); jobErr != nil {
			logger.Error().Err(jobErr).Msg("statement job failed")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("bad statement schedule")
	}
}

// crossCheckAccounts warns about registry entries the budgeting platform
// does not know. Startup still proceeds; the platform may simply be down.
func crossCheckAccounts(
	ctx context.Context,
	registry *accounts.Registry,
	fireflySvc *firefly.Firefly,
) {
	logger := zerolog.Ctx(ctx)

	remote, err := fireflySvc.ListAccounts(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not list platform accounts for cross-check")
		return
	}

	remoteIDs := lo.Map(remote, func(acc *firefly.Account, _ int) string {
		return acc.Id
	})

	for _, id := range registry.IDs() {
		if !lo.Contains(remoteIDs, id) {
			logger.Warn().Str("account_id", id).Msg("registry account not found on platform")
		}
	}
}
