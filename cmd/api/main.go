package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"spyglass-srv/config"
	configDiscord "spyglass-srv/config/discord"
	configGemini "spyglass-srv/config/gemini"
	configKafka "spyglass-srv/config/kafka"
	configMinIO "spyglass-srv/config/minio"
	configPostgre "spyglass-srv/config/postgre"
	configRabbit "spyglass-srv/config/rabbitmq"
	configRedis "spyglass-srv/config/redis"
	_ "spyglass-srv/docs" // Import swagger docs
	historyPostgre "spyglass-srv/internal/history/repository/postgre"
	"spyglass-srv/internal/httpserver"
	pkgJWT "spyglass-srv/pkg/jwt"
	pkgKafka "spyglass-srv/pkg/kafka"
	"spyglass-srv/pkg/log"
)

// @title       Spyglass API
// @description Competitive intelligence reports with progressive presentation, narration and media tools.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name spyglass_session
// @description Session token stored in an HttpOnly cookie. Set by POST /api/v1/sessions.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Session token as "Bearer {token}".
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize PostgreSQL (history backend only)
	var postgresDB *sql.DB
	if cfg.History.Backend == config.HistoryBackendPostgres {
		postgresDB, err = configPostgre.Connect(ctx, cfg.Postgres, historyPostgre.Migrate)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer configPostgre.Disconnect()
		logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	}

	// 4. Initialize Discord (optional)
	discordClient, err := configDiscord.Connect(logger, cfg.Discord)
	switch {
	case err != nil:
		logger.Warnf(ctx, "Discord webhook misconfigured, alerts disabled: %v", err)
		discordClient = nil
	case discordClient == nil:
		logger.Info(ctx, "Discord webhook not configured (optional)")
	default:
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinIO.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Gemini
	geminiClient, err := configGemini.Connect(cfg.Gemini)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized (model %s)", cfg.Gemini.Model)

	// 8. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available, analysis events disabled: %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
		}
	}

	// 9. Initialize RabbitMQ
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ, false)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbit.Disconnect()
	rabbitChannel, err := rabbitConn.Channel()
	if err != nil {
		logger.Error(ctx, "Failed to open RabbitMQ channel: ", err)
		return
	}
	defer rabbitChannel.Close()
	logger.Infof(ctx, "RabbitMQ connected, video exchange %s", cfg.RabbitMQ.VideoExchange)

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage Configuration
		MinIO: minioClient,

		// Generative AI
		Gemini: geminiClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,
		RabbitChannel: rabbitChannel,

		// Authentication & Security Configuration
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
