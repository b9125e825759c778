package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Backend   BackendConfig
	Device    DeviceConfig
	Discovery DiscoveryConfig
	Logger    LoggerConfig
	APIKey    string
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

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address         string
	LookupdAddress  string
	ConsumerChannel string
}

// BackendConfig selects how the discovery pipeline reaches provider data.
// Mode "postgres" serves from the local database; mode "http" proxies to a
// remote provider service.
type BackendConfig struct {
	Mode       string
	ServiceURL string
	TimeoutSec int
}

// DeviceConfig contains the device bridge (geolocation agent) configuration
type DeviceConfig struct {
	BridgeURL  string
	TimeoutSec int
}

// DiscoveryConfig contains discovery pipeline tuning
type DiscoveryConfig struct {
	OwnerUserID      string
	PageSize         int
	DisplayLimit     int
	NearbyMinKm      float64
	NearbyMaxKm      float64
	EnrichBatchSize  int
	FetchTimeoutSec  int
	EnrichTimeoutSec int
	ResumeAfterMin   int
	CacheTTLMin      int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
