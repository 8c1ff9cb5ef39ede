package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type InvalidationCfg struct {
	Enabled bool
	Topic   string
	Brokers string
	GroupID string
}

type Config struct {
	Addr     string
	LogLevel string

	GeocoderURL     string
	GeocoderTimeout time.Duration
	GeoUserAgent    string
	QueryVariants   []string

	OverpassURL     string
	OverpassTimeout time.Duration
	PoiRadiusM      int
	PoiLimit        int

	CacheDriver    string
	RedisAddr      string
	CacheOpTimeout time.Duration
	CacheTTLGeo    time.Duration
	CacheTTLPoi    time.Duration
	CacheMemSize   int

	Invalidation InvalidationCfg

	ProfileDriver string
	ProfilePath   string
}

func FromEnv() Config {
	return Config{
		Addr:     getenv("ADDR", ":8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		GeocoderURL:     getenv("GEOCODER_URL", "https://nominatim.openstreetmap.org/search"),
		GeocoderTimeout: getduration("GEOCODER_TIMEOUT", 10*time.Second),
		GeoUserAgent:    getenv("GEO_USER_AGENT", "smart-trip-planner/1.0"),
		QueryVariants:   parseList(getenv("GEO_QUERY_VARIANTS", "%s, India|%s city India|%s district India")),

		OverpassURL:     getenv("OVERPASS_URL", "http://overpass-api.de/api/interpreter"),
		OverpassTimeout: getduration("OVERPASS_TIMEOUT", 30*time.Second),
		PoiRadiusM:      getint("POI_RADIUS_M", 5000),
		PoiLimit:        getint("POI_LIMIT", 50),

		CacheDriver:    getenv("CACHE_DRIVER", "none"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		CacheOpTimeout: getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),
		CacheTTLGeo:    getduration("CACHE_TTL_GEO", 24*time.Hour),
		CacheTTLPoi:    getduration("CACHE_TTL_POI", time.Hour),
		CacheMemSize:   getint("CACHE_MEM_SIZE", 1024),

		Invalidation: InvalidationCfg{
			Enabled: getbool("INVALIDATION_ENABLED", false),
			Topic:   getenv("KAFKA_TOPIC", "place-updates"),
			Brokers: getenv("KAFKA_BROKERS", "localhost:9092"),
			GroupID: getenv("KAFKA_GROUP_ID", "planner-invalidator"),
		},

		ProfileDriver: getenv("PROFILE_DRIVER", "file"),
		ProfilePath:   getenv("PROFILE_PATH", "memory_store.json"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// parse "a|b|c" into a list, dropping empty entries
func parseList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, "|") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
