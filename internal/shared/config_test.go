package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "DATASET_SOURCE", "DATASET_URL", "REDIS_ADDR", "CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppEnv != "prod" || c.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.DatasetSource != "http" || c.DatasetURL != DefaultDatasetURL {
		t.Fatalf("unexpected dataset defaults: %q %q", c.DatasetSource, c.DatasetURL)
	}
	if c.RedisAddr != "" {
		t.Fatalf("cache should be off by default")
	}
	if c.CacheTTL != 15*time.Minute {
		t.Fatalf("cache ttl = %v", c.CacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "MySQL")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("IMPORT_WORKERS", "nope")
	c := Load()
	if c.DatasetSource != "mysql" {
		t.Fatalf("source = %q", c.DatasetSource)
	}
	if c.CacheTTL != 30*time.Second {
		t.Fatalf("ttl = %v", c.CacheTTL)
	}
	if c.ImportWorkers != 4 {
		t.Fatalf("bad integer should fall back, got %d", c.ImportWorkers)
	}
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "ftp")
	if got := Load().DatasetSource; got != "http" {
		t.Fatalf("source = %q", got)
	}
}
