package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

// InitConfig loads configuration from a .env file in local environments and
// from process environment variables everywhere else.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "jasaku-discovery")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")
	configs.NSQ.ConsumerChannel = GetEnv("NSQ_CONSUMER_CHANNEL", "discovery")

	// Backend config
	configs.Backend.Mode = GetEnv("BACKEND_MODE", "postgres")
	configs.Backend.ServiceURL = GetEnv("BACKEND_SERVICE_URL", "http://localhost:9991")
	configs.Backend.TimeoutSec = GetEnvAsInt("BACKEND_TIMEOUT_SEC", 10)

	// Device bridge config
	configs.Device.BridgeURL = GetEnv("DEVICE_BRIDGE_URL", "http://localhost:9992")
	configs.Device.TimeoutSec = GetEnvAsInt("DEVICE_TIMEOUT_SEC", 15)

	// Discovery pipeline config
	configs.Discovery.OwnerUserID = GetEnv("DISCOVERY_OWNER_USER_ID", "")
	configs.Discovery.PageSize = GetEnvAsInt("DISCOVERY_PAGE_SIZE", 10)
	configs.Discovery.DisplayLimit = GetEnvAsInt("DISCOVERY_DISPLAY_LIMIT", 10)
	configs.Discovery.NearbyMinKm = GetEnvAsFloat("DISCOVERY_NEARBY_MIN_KM", 0.1)
	configs.Discovery.NearbyMaxKm = GetEnvAsFloat("DISCOVERY_NEARBY_MAX_KM", 15.0)
	configs.Discovery.EnrichBatchSize = GetEnvAsInt("DISCOVERY_ENRICH_BATCH_SIZE", 5)
	configs.Discovery.FetchTimeoutSec = GetEnvAsInt("DISCOVERY_FETCH_TIMEOUT_SEC", 20)
	configs.Discovery.EnrichTimeoutSec = GetEnvAsInt("DISCOVERY_ENRICH_TIMEOUT_SEC", 5)
	configs.Discovery.ResumeAfterMin = GetEnvAsInt("DISCOVERY_RESUME_AFTER_MIN", 5)
	configs.Discovery.CacheTTLMin = GetEnvAsInt("DISCOVERY_CACHE_TTL_MIN", 15)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// API key for mutating endpoints
	configs.APIKey = GetEnv("API_KEY", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
