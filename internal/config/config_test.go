package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Addr != ":8085" {
		t.Fatalf("addr=%q want :8085", cfg.Addr)
	}
	if cfg.DatasetTTL != time.Hour {
		t.Fatalf("dataset ttl=%v want 1h", cfg.DatasetTTL)
	}
	if cfg.Warehouse.Configured() {
		t.Fatalf("warehouse should not be configured without credentials")
	}
	if cfg.Chat.Configured() {
		t.Fatalf("chat should not be configured without an api key")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DATASET_TTL", "10m")
	t.Setenv("CLUSTER_H3_RES", "5")
	t.Setenv("SNOWFLAKE_USER", "analyst")
	t.Setenv("SNOWFLAKE_ACCOUNT", "xy12345")
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("MEDIA_ALLOWED_HOSTS", "a.example.com, b.example.com")

	cfg := FromEnv()
	if cfg.Addr != ":9000" {
		t.Fatalf("addr=%q want :9000", cfg.Addr)
	}
	if cfg.DatasetTTL != 10*time.Minute {
		t.Fatalf("dataset ttl=%v want 10m", cfg.DatasetTTL)
	}
	if cfg.ClusterRes != 5 {
		t.Fatalf("cluster res=%d want 5", cfg.ClusterRes)
	}
	if !cfg.Warehouse.Configured() {
		t.Fatalf("warehouse should be configured")
	}
	if !cfg.Chat.Configured() {
		t.Fatalf("chat should be configured")
	}
	if len(cfg.MediaHosts) != 2 || cfg.MediaHosts[1] != "b.example.com" {
		t.Fatalf("media hosts=%v", cfg.MediaHosts)
	}
}

func TestFromEnv_ClampsClusterRes(t *testing.T) {
	t.Setenv("CLUSTER_H3_RES_MIN", "-3")
	t.Setenv("CLUSTER_H3_RES_MAX", "99")

	cfg := FromEnv()
	if cfg.ClusterResMin != 0 {
		t.Fatalf("min=%d want 0", cfg.ClusterResMin)
	}
	if cfg.ClusterResMax != 15 {
		t.Fatalf("max=%d want 15", cfg.ClusterResMax)
	}
}
