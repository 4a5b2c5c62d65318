package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CacheConfig drives the Redis response cache that sits in front of the
// public turf listing. Availability shown there is advisory only; the
// allocator re-checks the ledger at commit time, so a short TTL serving
// slightly stale slot maps is acceptable.
type CacheConfig struct {
	Enabled      bool            // master switch; also off when Redis is absent
	Methods      map[string]bool // HTTP methods to cache, normally just GET
	TTL          time.Duration   // lifetime of a cached response
	KeyStrategy  string          // which request parts form the cache key
	Prefix       string          // Redis key namespace
	MaxBodyBytes int             // responses larger than this are not stored
}

// LoadCacheConfig reads cache settings from the environment with
// defaults tuned for the turf listing (30s TTL, GET only).
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       getenv("CACHE_PREFIX", "turfcache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

// env helpers shared with ratelimit.go
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
