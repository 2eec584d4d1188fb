package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort string

	// StoreBackend selects the durable stock store: "mysql" or "redis".
	StoreBackend string
	MySQLDSN     string
	RedisAddr    string

	WarehouseAddr string

	SyncIntervalSec    int
	ReconcileWorkers   int
	ReconcileQueueSize int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiEnv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid int env, using default")
		return def
	}
	return n
}

func Load() Config {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	return Config{
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		HTTPPort: getenv("HTTP_PORT", "8080"),

		StoreBackend: getenv("STORE_BACKEND", "mysql"),
		MySQLDSN:     getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/stockcache?parseTime=true"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),

		WarehouseAddr: getenv("WAREHOUSE_ADDR", "localhost:50061"),

		SyncIntervalSec:    atoiEnv("SYNC_INTERVAL_SEC", 9),
		ReconcileWorkers:   atoiEnv("RECONCILE_WORKERS", 4),
		ReconcileQueueSize: atoiEnv("RECONCILE_QUEUE_SIZE", 1024),
	}
}
