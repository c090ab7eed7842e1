package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	contactapp "github.com/muhammadheryan/contact-manager/application/contact"
	"github.com/muhammadheryan/contact-manager/cmd/config"
	redisclient "github.com/muhammadheryan/contact-manager/cmd/redis"
	_ "github.com/muhammadheryan/contact-manager/docs"
	contactRepo "github.com/muhammadheryan/contact-manager/repository/contact"
	redisRepo "github.com/muhammadheryan/contact-manager/repository/redis"
	"github.com/muhammadheryan/contact-manager/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-manager/transport"
	"github.com/muhammadheryan/contact-manager/utils/logger"
	validatorx "github.com/muhammadheryan/contact-manager/utils/validator"
	"go.uber.org/zap"
)

// @title CONTACT MANAGER API
// @version 1.0
// @description Contact Management API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Register the contact validation rules up front
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client (optional cache)
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Initialize repositories
	ContactRepo := contactRepo.NewContactRepository(db)
	CacheRepo := redisRepo.NewRepository()

	// Initialize event publisher (optional)
	var publisher contactapp.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub

		// Forward contact events to the webhook when one is configured
		if cfg.Webhook.URL != "" {
			consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User,
				cfg.RabbitMQ.Password, cfg.Webhook.URL, cfg.Webhook.APIKey)
			if err != nil {
				logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
			}
			defer consumer.Close()

			if err := consumer.Start(context.Background()); err != nil {
				logger.Fatal("err start rabbitmq consumer", zap.Error(err))
			}
		}
	}

	// Initialize application layers
	ContactApp := contactapp.NewContactApp(cfg, ContactRepo, CacheRepo, publisher)

	httpTransport := transport.NewTransport(ContactApp, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
