package models

import "time"

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig

	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig

	JWT    JWTConfig
	Fleet  FleetConfig
	Jobs   JobsConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains token configuration. AccessExpiration is in minutes,
// RefreshExpiration in hours.
type JWTConfig struct {
	Secret            string
	AccessExpiration  int
	RefreshExpiration int
	Issuer            string
	CookieName        string
	CookieSecure      bool
}

// FleetConfig contains fleet map policy values. These mirror what the
// dashboard uses: how often admins poll the fleet and how stale a location
// sample may be before a driver shows as offline.
type FleetConfig struct {
	PollInterval time.Duration
	OnlineWindow time.Duration
	LocationTTL  time.Duration
}

// JobsConfig contains job lifecycle policy.
type JobsConfig struct {
	// AdminAdvance allows an admin to drive assigned→in-progress→completed
	// on behalf of the assigned driver.
	AdminAdvance bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
