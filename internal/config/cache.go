package config

import "time"

// CacheConfig controls the Redis response cache for GET deck requests.
// Deck responses are intentionally random, so caching trades freshness for
// latency; the short default TTL keeps repeated sessions varied.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads cache settings with defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", false),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "deckcache"),
	}
}
