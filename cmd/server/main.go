package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/performance-search/internal/config"
	"github.com/iliyamo/performance-search/internal/database"
	"github.com/iliyamo/performance-search/internal/handler"
	"github.com/iliyamo/performance-search/internal/middleware"
	"github.com/iliyamo/performance-search/internal/queue"
	"github.com/iliyamo/performance-search/internal/repository"
	"github.com/iliyamo/performance-search/internal/router"
	"github.com/iliyamo/performance-search/internal/search"
	"github.com/iliyamo/performance-search/internal/seatstatus"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it searches report no seat statuses and
	// caching/rate limiting are off.
	rdb := config.NewRedisClient()
	var statuses search.SeatStatusProvider
	if rdb != nil {
		defer rdb.Close()
		provider := seatstatus.NewRedisProvider(rdb, cfg.SeatStatusKey)
		statuses = provider
		if cfg.StatusConsumer {
			go func() {
				if err := queue.StartSeatStatusConsumer(ctx, cfg.AMQPURL, provider); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("status-consumer: stopped: %v", err)
				}
			}()
		}
	} else {
		log.Printf("redis unavailable: seat statuses, caching and rate limiting disabled")
	}

	searcher := search.NewSearcher(
		repository.NewPerformanceRepo(db),
		repository.NewFilmRepo(db),
		repository.NewReservationRepo(db),
		statuses,
		cfg.Location(),
		cfg.FilmImageBaseURL,
	)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, handler.Health(db))
	if cfg.JWTSecret == "" {
		log.Printf("JWT_SECRET not set: /performances is unauthenticated")
	}
	router.RegisterPerformances(e, handler.NewPerformanceHandler(searcher), router.PerformanceOptions{
		JWTSecret: cfg.JWTSecret,
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
