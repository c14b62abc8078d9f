package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// Per-query deadline applied by repositories on top of the request context
const DBQueryTimeout = 5 * time.Second

// HTTP server timeouts
const (
	ServerRequestTimeout  = 10 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Activity trail
const (
	ActivityRecentLimit  = 20
	ActivityWriteTimeout = 3 * time.Second
)

// Support inbox page size
const SupportMessagesLimit = 50

// Max request body; profile forms are text only
const MaxRequestBodyBytes = 1 << 20

// Inventory gauge refresh
const (
	StatsRefreshInterval = time.Minute
	StatsRefreshTimeout  = 10 * time.Second
)
