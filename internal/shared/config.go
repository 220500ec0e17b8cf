package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultDatasetURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBMSkillsNetwork-JS0101EN-SkillsNetwork/travel1.json"

type Config struct {
	AppEnv        string
	LogLevel      string
	HTTPAddr      string
	MetricsAddr   string
	DatasetSource string // http|mysql
	DatasetURL    string
	MySQLDSN      string
	RedisAddr     string // empty disables the cache
	RedisDB       int
	RedisPass     string
	FetchRPS      int
	ImportWorkers int
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		LogLevel:      env("LOG_LEVEL", "info"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		DatasetSource: strings.ToLower(env("DATASET_SOURCE", "http")),
		DatasetURL:    env("DATASET_URL", DefaultDatasetURL),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/travel?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		FetchRPS:      atoi("FETCH_RPS", 5),
		ImportWorkers: atoi("IMPORT_WORKERS", 4),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.DatasetSource != "http" && c.DatasetSource != "mysql" {
		log.Warn().Str("source", c.DatasetSource).Msg("unknown DATASET_SOURCE, using http")
		c.DatasetSource = "http"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
