package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/courtsight/courtsight/external/livefeed"
	"github.com/courtsight/courtsight/internal/archive"
	"github.com/courtsight/courtsight/internal/cleaner"
	"github.com/courtsight/courtsight/internal/config"
	"github.com/courtsight/courtsight/internal/display"
	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/infrastructure/repository/memory"
	"github.com/courtsight/courtsight/internal/infrastructure/repository/postgres"
	"github.com/courtsight/courtsight/internal/interfaces/httpapi"
	"github.com/courtsight/courtsight/internal/platform/cache"
	idgen "github.com/courtsight/courtsight/internal/platform/id"
	"github.com/courtsight/courtsight/internal/platform/logging"
	"github.com/courtsight/courtsight/internal/platform/resilience"
	"github.com/courtsight/courtsight/internal/usecase"
	"github.com/courtsight/courtsight/internal/validate"
	"github.com/jmoiron/sqlx"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	matchRepo, playerRepo, rankingRepo, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	loader := archive.NewLoader(cfg.ArchiveDir, cfg.ArchiveCacheTTL, logger)
	cl := cleaner.New(cleaner.DefaultOptions(), idgen.NewRandomGenerator(), logger)
	validator := validate.New(cfg.ValidationCacheTTL, logger)
	formatter := display.New()

	resultTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		// A nanosecond TTL keeps the read-through path while making every
		// entry expire before the next read.
		resultTTL = time.Nanosecond
	}

	var feed usecase.FeedProvider
	if cfg.FeedEnabled {
		feed = livefeed.NewClient(livefeed.ClientConfig{
			BaseURL:    cfg.FeedBaseURL,
			Token:      cfg.FeedToken,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
	}

	matchSvc := usecase.NewMatchService(feed, cl, validator, formatter, cache.NewStore(resultTTL), logger)
	profileSvc := usecase.NewProfileService(playerRepo, rankingRepo, loader)
	analyticsSvc := usecase.NewAnalyticsService(loader, playerRepo, rankingRepo, cache.NewStore(resultTTL), cfg.IngestWorkers, logger)
	ingestionSvc := usecase.NewIngestionService(loader, cl, matchRepo, playerRepo, rankingRepo, cfg.IngestWorkers, logger)

	handler := httpapi.NewHandler(matchSvc, profileSvc, analyticsSvc, ingestionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (match.Repository, history.PlayerRepository, history.RankingRepository, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("no DB_URL configured, using in-memory repositories")
		return memory.NewMatchRepository(), memory.NewPlayerRepository(), memory.NewRankingRepository(), nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	return postgres.NewMatchRepository(db), postgres.NewPlayerRepository(db), postgres.NewRankingRepository(db), nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := connectDB(dbURL, dbNameFromURL(dbURL))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
