package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-formula/internal/config"
	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	"github.com/riskibarqy/fantasy-formula/internal/domain/season"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/account/anubis"
	cacherepo "github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-formula/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-formula/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fantasy-formula/internal/platform/cache"
	"github.com/riskibarqy/fantasy-formula/internal/platform/logging"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
)

type repositories struct {
	seasons       season.Repository
	races         race.Repository
	championships championship.Repository
	lineups       lineup.Repository
	close         func() error
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database handle and must run after the server is shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	seasonRepo, raceRepo := repos.seasons, repos.races
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		seasonRepo = cacherepo.NewSeasonRepository(seasonRepo, store)
		raceRepo = cacherepo.NewRaceRepository(raceRepo, store)
		logger.Info("read-through cache enabled", "ttl", cfg.CacheTTL.String())
	}

	rulesSvc := usecase.NewRulesService(seasonRepo, logger)
	resultsSvc := usecase.NewResultsService(raceRepo, rulesSvc, logger)
	lineupSvc := usecase.NewLineupService(repos.lineups, raceRepo, repos.championships, rulesSvc, logger)
	standingsSvc := usecase.NewStandingsService(raceRepo, repos.championships, repos.lineups, rulesSvc, logger, cfg.StandingsWorkers)
	contexts := usecase.NewRequestContextFactory(repos.championships)

	anubisClient := anubis.NewClient(anubis.Config{
		BaseURL:        cfg.AnubisBaseURL,
		IntrospectPath: cfg.AnubisIntrospectPath,
		AdminKey:       cfg.AnubisAdminKey,
		Timeout:        cfg.AnubisTimeout,
		CacheTTL:       cfg.AnubisCacheTTL,
		CircuitBreaker: cfg.AnubisCircuitBreaker(),
	}, logger)

	handler := httpapi.NewHandler(rulesSvc, resultsSvc, lineupSvc, standingsSvc, contexts, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.DBSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("seed database: %w", err)
			}
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL))
		return repositories{
			seasons:       postgres.NewSeasonRepository(db),
			races:         postgres.NewRaceRepository(db),
			championships: postgres.NewChampionshipRepository(db),
			lineups:       postgres.NewLineupRepository(db),
			close:         db.Close,
		}, nil
	default:
		raceRepo := memory.NewRaceRepository(memory.SeedRaces(), memory.SeedDriverOffers(), memory.SeedResults())
		logger.Info("storage ready", "driver", config.StorageMemory)
		return repositories{
			seasons:       memory.NewSeasonRepository(memory.SeedRules()),
			races:         raceRepo,
			championships: memory.NewChampionshipRepository(memory.SeedChampionships(), memory.SeedParticipants(), memory.SeedAdmins()),
			lineups:       memory.NewLineupRepository(raceRepo, memory.SeedLineups()),
			close:         func() error { return nil },
		}, nil
	}
}
