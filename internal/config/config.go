package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type WarehouseCfg struct {
	User      string
	Password  string
	Account   string
	Warehouse string
	Database  string
	Schema    string
}

// true when enough credentials are present to attempt a connection
func (w WarehouseCfg) Configured() bool {
	return w.User != "" && w.Account != ""
}

type ChatCfg struct {
	APIKey      string
	Model       string
	SessionTTL  time.Duration
	Temperature float64
}

func (c ChatCfg) Configured() bool { return c.APIKey != "" }

type Config struct {
	Addr            string
	LogLevel        string
	DatasetTTL      time.Duration
	ClusterRes      int
	ClusterResMin   int
	ClusterResMax   int
	MediaHosts      []string
	MediaMaxBytes   int64
	WarehouseTimeout time.Duration
	Warehouse       WarehouseCfg
	Chat            ChatCfg
}

func FromEnv() Config {
	res := getint("CLUSTER_H3_RES", 4)
	minRes := getint("CLUSTER_H3_RES_MIN", 2)
	maxRes := getint("CLUSTER_H3_RES_MAX", 7)
	if minRes < 0 {
		minRes = 0
	}
	if maxRes > 15 {
		maxRes = 15
	}
	if minRes > maxRes {
		minRes, maxRes = res, res
	}

	return Config{
		Addr:            getenv("ADDR", ":8085"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		DatasetTTL:      getduration("DATASET_TTL", time.Hour),
		ClusterRes:      res,
		ClusterResMin:   minRes,
		ClusterResMax:   maxRes,
		MediaHosts:      getlist("MEDIA_ALLOWED_HOSTS", "upload.wikimedia.org,images.unsplash.com"),
		MediaMaxBytes:   getint64("MEDIA_MAX_BYTES", 8<<20),
		WarehouseTimeout: getduration("WAREHOUSE_TIMEOUT", 30*time.Second),
		Warehouse: WarehouseCfg{
			User:      getenv("SNOWFLAKE_USER", ""),
			Password:  getenv("SNOWFLAKE_PASSWORD", ""),
			Account:   getenv("SNOWFLAKE_ACCOUNT", ""),
			Warehouse: getenv("SNOWFLAKE_WAREHOUSE", ""),
			Database:  getenv("SNOWFLAKE_DATABASE", ""),
			Schema:    getenv("SNOWFLAKE_SCHEMA", ""),
		},
		Chat: ChatCfg{
			APIKey:      getenv("GOOGLE_API_KEY", ""),
			Model:       getenv("CHAT_MODEL", "gemini-1.5-flash"),
			SessionTTL:  getduration("CHAT_SESSION_TTL", 30*time.Minute),
			Temperature: getfloat("CHAT_TEMPERATURE", 0.5),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getint64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// parse "a,b,c" into a trimmed slice
func getlist(k, def string) []string {
	raw := getenv(k, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
