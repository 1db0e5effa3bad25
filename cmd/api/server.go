package main

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mw "bookworm/internal/api/middlewares"
	"bookworm/internal/api/router"
	"bookworm/internal/repository/sqlconnect"
	"bookworm/internal/storage/images"
	"bookworm/internal/validate"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	if err := validate.Env(); err != nil {
		log.Fatalf("config: %v", err)
	}
	for _, warn := range validate.HardeningWarnings() {
		log.Printf("[startup] %s", warn)
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("connected to Postgres")

	img, err := images.New(context.Background())
	if err != nil {
		log.Fatalf("image store init failed: %v", err)
	}

	rdb := connectRedis()

	handler := mw.Apply(
		router.New(db, rdb, img),
		mw.Recovery,
		mw.RequestID,
		mw.Cors,
		mw.SecurityHeaders,
		mw.BodySizeLimit,
		mw.ResponseTime,
		mw.Compression,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		log.Println("server is running on port:", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

// connectRedis is optional: without REDIS_URL the login rate limiter
// fails open.
func connectRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	if opt.TLSConfig == nil && strings.HasPrefix(url, "rediss://") {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 1 * time.Second
	opt.WriteTimeout = 1 * time.Second
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	log.Println("connected to Redis")
	return rdb
}
