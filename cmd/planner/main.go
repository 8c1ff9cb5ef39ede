package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/akhil-nair/trip-planner/internal/cache"
	"github.com/akhil-nair/trip-planner/internal/cache/lrustore"
	"github.com/akhil-nair/trip-planner/internal/cache/redisstore"
	"github.com/akhil-nair/trip-planner/internal/config"
	"github.com/akhil-nair/trip-planner/internal/geocode"
	"github.com/akhil-nair/trip-planner/internal/httpclient"
	"github.com/akhil-nair/trip-planner/internal/invalidation/kafkaconsumer"
	"github.com/akhil-nair/trip-planner/internal/logger"
	"github.com/akhil-nair/trip-planner/internal/observability"
	"github.com/akhil-nair/trip-planner/internal/planner"
	"github.com/akhil-nair/trip-planner/internal/poi"
	"github.com/akhil-nair/trip-planner/internal/profile"
	"github.com/akhil-nair/trip-planner/internal/server"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "planner",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting trip planner",
		"addr", cfg.Addr,
		"version", Version,
		"geocoder", cfg.GeocoderURL,
		"overpass", cfg.OverpassURL,
		"cache_driver", cfg.CacheDriver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store cache.Interface
	switch cfg.CacheDriver {
	case "memory":
		mem, err := lrustore.New(cfg.CacheMemSize)
		if err != nil {
			appLog.Error("memory cache init failed", "err", err)
			return 1
		}
		store = mem
	case "redis":
		rc, err := redisstore.New(ctx, cfg.RedisAddr, cfg.CacheOpTimeout)
		if err != nil {
			appLog.Error("redis cache init failed", "err", err)
			return 1
		}
		defer func() { _ = rc.Close() }()
		store = rc
	case "", "none":
		// every request goes straight to the upstreams
	default:
		appLog.Warn("unknown cache driver, caching disabled", "driver", cfg.CacheDriver)
	}

	geoOpts := []geocode.Option{geocode.WithTimeout(cfg.GeocoderTimeout)}
	poiOpts := []poi.Option{poi.WithTimeout(cfg.OverpassTimeout), poi.WithLimit(cfg.PoiLimit)}
	if store != nil {
		geoOpts = append(geoOpts, geocode.WithCache(store, cfg.CacheTTLGeo))
		poiOpts = append(poiOpts, poi.WithCache(store, cfg.CacheTTLPoi))
	}

	resolver := geocode.New(appLog, httpclient.NewOutbound(cfg.GeocoderTimeout),
		cfg.GeocoderURL, cfg.GeoUserAgent, cfg.QueryVariants, geoOpts...)
	aggregator := poi.New(appLog, httpclient.NewOutbound(cfg.OverpassTimeout),
		cfg.OverpassURL, poiOpts...)

	p := planner.New(appLog, resolver, aggregator, cfg.PoiRadiusM)

	var profiles profile.Store
	switch cfg.ProfileDriver {
	case "sqlite":
		st, err := profile.NewSQLiteStore(cfg.ProfilePath)
		if err != nil {
			appLog.Error("sqlite profile store init failed", "err", err)
			return 1
		}
		defer func() { _ = st.Close() }()
		profiles = st
	default:
		profiles = profile.NewFileStore(cfg.ProfilePath)
	}

	if cfg.Invalidation.Enabled {
		if store == nil {
			appLog.Warn("invalidation enabled but no cache driver; consumer not started")
		} else {
			consumer := kafkaconsumer.New(
				kafkaconsumer.NewConfig(cfg.Invalidation.Brokers, cfg.Invalidation.Topic,
					cfg.Invalidation.GroupID, cfg.PoiRadiusM, cfg.PoiLimit),
				appLog, store)
			go func() {
				if err := consumer.Start(ctx); err != nil {
					appLog.Error("invalidation consumer exited", "err", err)
				}
			}()
		}
	}

	if err := server.Run(ctx, cfg, appLog, p, profiles); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
