// README: Entry point; loads config, wires catalog, cache, enrichment and suggestions, starts the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"tripfit/internal/config"
	httptransport "tripfit/internal/http"
	"tripfit/internal/infra"
	"tripfit/internal/logger"
	"tripfit/internal/maps"
	"tripfit/internal/modules/catalog"
	"tripfit/internal/modules/suggest"
)

func main() {
	seed := flag.Bool("seed", false, "load the catalog file into Postgres and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		stdlog.Fatalf("logger init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *seed {
		if err := seedCatalog(ctx, cfg, log); err != nil {
			log.WithError(err).Fatal("seed catalog")
		}
		return
	}

	source, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("catalog source")
	}
	defer cleanup()

	cache, err := newCache(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("catalog cache")
	}

	enricher, err := newEnricher(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("maps init")
	}

	catalogSvc := catalog.NewService(source, cache, cfg.Catalog.CacheTTL, enricher, log)
	suggestSvc := suggest.NewService(catalogSvc, log)

	gin.SetMode(gin.ReleaseMode)
	router := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:   catalogSvc,
		Suggest:   suggestSvc,
		RateLimit: cfg.RateLimit,
		Log:       log,
	})

	log.LogSystem("api", "start", true, logger.Fields{
		"addr":           cfg.HTTP.Addr,
		"catalog_source": cfg.Catalog.Source,
		"redis":          cfg.Redis.Addr != "",
		"maps":           enricher != nil,
	})
	if err := httptransport.NewServer(cfg, router, log).Run(ctx); err != nil {
		log.WithError(err).Fatal("http server")
	}
	log.LogSystem("api", "stop", true, nil)
}

func newSource(ctx context.Context, cfg config.Config) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewStore(pool), pool.Close, nil
	default:
		src, err := catalog.NewFileSource(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}
}

// newCache prefers Redis when an address is configured.
func newCache(ctx context.Context, cfg config.Config, log *logger.Logger) (catalog.Cache, error) {
	if cfg.Redis.Addr == "" {
		return catalog.NewMemoryCache(cfg.Catalog.CacheTTL, 2*cfg.Catalog.CacheTTL), nil
	}
	client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		return nil, err
	}
	log.LogSystem("cache", "connect", true, logger.Fields{"addr": cfg.Redis.Addr})
	return catalog.NewRedisCache(client), nil
}

func newEnricher(cfg config.Config, log *logger.Logger) (*catalog.Enricher, error) {
	if cfg.Maps.APIKey == "" {
		return nil, nil
	}
	routes, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		return nil, err
	}
	places, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		return nil, err
	}
	return catalog.NewEnricher(routes, places, log), nil
}

func seedCatalog(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	dests, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := catalog.NewStore(pool).Seed(ctx, dests); err != nil {
		return fmt.Errorf("seed %s: %w", cfg.Catalog.Path, err)
	}
	log.LogSystem("catalog", "seed", true, logger.Fields{"records": len(dests), "path": cfg.Catalog.Path})
	return nil
}
