package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	AWS      AWSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	APIKey   APIKeyConfig
	Match    MatchConfig
	Pricing  PricingConfig
	Reminder ReminderConfig
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

// AWSConfig contains S3 file storage configuration
type AWSConfig struct {
	Region          string
	Bucket          string
	UploadExpiryMin int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level string
	Type  string // "console" or "json"
}

// APIKeyConfig contains API keys for service-to-service calls
type APIKeyConfig struct {
	SchedulerKey  string
	BackofficeKey string
}

// MatchConfig contains driver matching configuration
type MatchConfig struct {
	SearchRadiusKm  float64 `json:"search_radius_km"`  // default radius for candidate lookup
	AverageSpeedKmh float64 `json:"average_speed_kmh"` // assumed speed for ETA estimates
}

// PricingConfig contains trip pricing configuration
type PricingConfig struct {
	BaseFare  float64 `json:"base_fare"`
	PerKmRate float64 `json:"per_km_rate"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}

// ReminderConfig contains reminder scheduler configuration
type ReminderConfig struct {
	IntervalMin int `json:"interval_min"` // poll cadence in minutes
}
