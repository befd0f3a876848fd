package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Fees     FeesConfig
	Services ServicesConfig
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
	Driver    string
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64 // megabytes
	MaxAge     int   // days
	MaxBackups int
	Compress   bool
	Type       string // file, console or both
}

// ServicesConfig contains URLs for collaborator services
type ServicesConfig struct {
	AttendanceServiceURL string
}

// FeesConfig contains fee ledger specific configuration
type FeesConfig struct {
	PenaltyAmount      string // flat overdue surcharge, decimal string
	PenaltyCronSpec    string // cron expression for the daily penalty run
	PenaltyLockTTL     int    // seconds the scheduler lock is held
	PenaltyWorkers     int    // concurrent records per penalty run
	ReceiptWindowHours int    // advisory receipt download window
	RiskCacheTTL       int    // minutes a cached risk level stays valid
}
