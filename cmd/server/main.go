package main

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
	"github.com/labstack/echo/v4/middleware"

	"github.com/spicekitchen/backend/internal/config"
	"github.com/spicekitchen/backend/internal/es"
	"github.com/spicekitchen/backend/internal/handlers"
	"github.com/spicekitchen/backend/internal/logging"
	loggingmw "github.com/spicekitchen/backend/internal/middleware/logging"
	"github.com/spicekitchen/backend/internal/mykafka"
	"github.com/spicekitchen/backend/internal/seed"
	"github.com/spicekitchen/backend/internal/service"
	httpserver "github.com/spicekitchen/backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	seedCtx := logging.IntoContext(context.Background(), logger)
	if err := seed.Run(seedCtx, db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS}, "menu_events")
	} else {
		logger.Warn("kafka disabled, KAFKA_ADDRESS not set")
	}

	menuHandler := &handlers.MenuHandler{DB: db, Producer: producer, ESIndex: configuration.ES_INDEX}
	searchHandler := &handlers.SearchHandler{DB: db, ESIndex: configuration.ES_INDEX}
	if configuration.ES_URL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search falls back to catalog filter", "error", err)
		} else {
			menuHandler.ES = client
			searchHandler.ES = client
		}
	} else {
		logger.Warn("elasticsearch disabled, ES_URL not set")
	}

	tokens := &service.TokenService{
		Credentials: service.BcryptCredentials{Hash: configuration.ADMIN_PASSWORD_HASH},
		JWTSecret:   []byte(configuration.JWT_SECRET),
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:              db,
		MenuHandler:     menuHandler,
		ReviewHandler:   &handlers.ReviewHandler{DB: db},
		ChatHandler:     &handlers.ChatHandler{Now: time.Now},
		SearchHandler:   searchHandler,
		CheckoutHandler: &handlers.CheckoutHandler{WhatsAppNumber: configuration.WHATSAPP_NUMBER},
		AuthHandler:     &handlers.AuthHandler{Tokens: tokens},
		TokenService:    tokens,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
