package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"motionklub/internal/config"
	"motionklub/internal/database"
	"motionklub/internal/modules/catalog"
	"motionklub/internal/modules/session"
	jwtsvc "motionklub/internal/pkg/jwt"
	"motionklub/internal/realtime"
	"motionklub/internal/repository"
	"motionklub/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatal(err)
	}

	sessions, err := sessionStore(ctx, cfg, db)
	if err != nil {
		log.Fatal(err)
	}

	hub := realtime.NewHub()
	defer hub.Close()

	router := server.NewRouter(server.Deps{
		DB:       db,
		JWT:      jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		Sessions: sessions,
		Hub:      hub,
		Catalog: catalog.Options{
			Latency:  cfg.MockLatency,
			Location: cfg.ResortLocation,
		},
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func sessionStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (session.Store, error) {
	if cfg.SessionBackend != "redis" {
		return repository.NewSessionRecordRepository(db), nil
	}

	opts := &redis.Options{Addr: cfg.RedisURL}
	if strings.Contains(cfg.RedisURL, "://") {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opts = parsed
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Printf("session store: redis addr=%s", opts.Addr)
	return repository.NewRedisSessionStore(client), nil
}
