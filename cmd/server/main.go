package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Balogunolalere/campainProj/config"
	_ "github.com/Balogunolalere/campainProj/docs"
	"github.com/Balogunolalere/campainProj/internal/adapters/email"
	httpdelivery "github.com/Balogunolalere/campainProj/internal/delivery/http"
	"github.com/Balogunolalere/campainProj/internal/delivery/http/controllers"
	"github.com/Balogunolalere/campainProj/internal/delivery/http/middleware"
	"github.com/Balogunolalere/campainProj/internal/domain"
	"github.com/Balogunolalere/campainProj/internal/repository/postgres"
	"github.com/Balogunolalere/campainProj/internal/repository/redisstore"
	"github.com/Balogunolalere/campainProj/internal/services"
)

// @title Campaign Service API
// @version 1.0
// @description Email marketing backend: subscribers, campaigns, mailing lists, bulk email ingestion and campaign dispatch.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg)

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SMTP: email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		},
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	subscriberService := services.NewSubscriberService(store, logger)
	campaignService := services.NewCampaignService(store, mailer, logger)
	emailListService := services.NewEmailListService(store)

	subscriberController := controllers.NewSubscriberController(logger, subscriberService)
	campaignController := controllers.NewCampaignController(logger, campaignService)
	emailListController := controllers.NewEmailListController(logger, emailListService)

	router := httpdelivery.NewRouter(subscriberController, campaignController, emailListController)
	handler := middleware.LoggingMiddleware(logger, router)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment, "store", cfg.StoreDriver, "mailer", cfg.MailerProvider)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newStore opens the configured document store and verifies connectivity
// before the server starts accepting requests.
func newStore(cfg *config.Config) (domain.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.New(rdb), nil
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := postgres.New(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
