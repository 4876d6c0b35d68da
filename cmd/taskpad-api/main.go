package main

import (
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"taskpad/api"
	"taskpad/storage"
)

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}
	connStr := os.Getenv("STORAGE_CONNECTION_STRING")
	tasksTableName := os.Getenv("TASKS_TABLE")
	if connStr == "" || tasksTableName == "" {
		log.Fatal("missing storage config")
	}
	ownerID := os.Getenv("OWNER_ID")
	if ownerID == "" {
		ownerID = "local"
	}

	base, err := storage.New(connStr, tasksTableName)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	var store api.Storage = base
	var deduper api.Deduper
	if redisConn := os.Getenv("REDIS_CONNECTION_STRING"); redisConn != "" {
		rc := redis.NewClient(parseRedisOptions(redisConn))

		cacheTTL := 5 * time.Minute
		if v := os.Getenv("CACHE_TTL"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				log.Fatalf("invalid CACHE_TTL: %v", err)
			}
			cacheTTL = d
		}
		store = storage.NewCache(base, rc, cacheTTL)

		dedupeTTL := 24 * time.Hour
		if v := os.Getenv("DEDUPER_TTL"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				log.Fatalf("invalid DEDUPER_TTL: %v", err)
			}
			dedupeTTL = d
		}
		deduper = api.NewRedisDeduper(rc, dedupeTTL)
	} else {
		log.Warn("redis not configured; caching and idempotency disabled")
	}

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, api.HeaderIdempotencyKey},
	}))
	e.Use(api.GzipRequestMiddleware())

	logger := log.New()
	api.Register(e, store, deduper, ownerID, logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("LISTEN_PORT"); ok {
		listenAddr = ":" + val
	}

	e.Logger.Fatal(e.Start(listenAddr))
}

// parseRedisOptions accepts either a redis URL or the comma-delimited
// "host:port,password=...,ssl=true" form used by managed caches.
func parseRedisOptions(redisConn string) *redis.Options {
	opts, err := redis.ParseURL(redisConn)
	if err == nil {
		return opts
	}
	parts := strings.Split(redisConn, ",")
	opts = &redis.Options{Addr: parts[0]}
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(kv[0]) {
		case "password":
			opts.Password = kv[1]
		case "ssl":
			if strings.ToLower(kv[1]) == "true" {
				opts.TLSConfig = &tls.Config{}
			}
		}
	}
	return opts
}
