package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/authoring"
	"github.com/ayivi/bus-ticket-reservation/internal/booking"
	"github.com/ayivi/bus-ticket-reservation/internal/config"
	"github.com/ayivi/bus-ticket-reservation/internal/directory"
	"github.com/ayivi/bus-ticket-reservation/internal/handler"
	"github.com/ayivi/bus-ticket-reservation/internal/queue"
	"github.com/ayivi/bus-ticket-reservation/internal/router"
	"github.com/ayivi/bus-ticket-reservation/internal/store/mysql"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := mysql.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	stores := mysql.New(db)
	dir := directory.New(stores)

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, stores),
		Public:  handler.NewPublicHandler(dir),
		Client:  handler.NewClientHandler(booking.New(stores), dir, stores),
		Company: handler.NewCompanyHandler(authoring.New(stores), dir),
		Admin:   handler.NewAdminHandler(dir, stores),
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	// Drains reservation.confirmed into logs/reservations.log.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
