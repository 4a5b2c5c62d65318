package main // Entry point for the turf booking API server

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/turf-booking/internal/config"
	"github.com/iliyamo/turf-booking/internal/database"
	"github.com/iliyamo/turf-booking/internal/handler"
	"github.com/iliyamo/turf-booking/internal/queue"
	"github.com/iliyamo/turf-booking/internal/repository"
	"github.com/iliyamo/turf-booking/internal/router"
)

func main() {
	// Load a local .env when present; real deployments set env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Optional Redis; nil disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; response cache and rate limiter disabled")
	}

	userRepo := repository.NewUserRepo(db)
	turfRepo := repository.NewTurfRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	e := echo.New()
	e.Validator = handler.NewValidator()
	router.RegisterRoutes(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, userRepo),
		User:    handler.NewUserHandler(cfg, userRepo),
		Turf:    handler.NewTurfHandler(turfRepo, bookingRepo),
		Booking: handler.NewBookingHandler(db, userRepo, turfRepo, bookingRepo),
		Redis:   rdb,
		Cfg:     cfg,
	})

	// Drain booking.confirmed into logs/booking.log in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
