package httpserver

import (
	"database/sql"
	"errors"

	"spyglass-srv/config"
	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/narration"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/gemini"
	pkgJWT "spyglass-srv/pkg/jwt"
	pkgKafka "spyglass-srv/pkg/kafka"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/markdown"
	"spyglass-srv/pkg/minio"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"
	pkgRedis "spyglass-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient minio.MinIO

	// Generative AI
	geminiClient gemini.IGemini

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer
	rabbitChannel pkgRabbit.IChannel

	// Authentication & Security Configuration
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	renderer   *markdown.Renderer
	archiver   narration.Archiver
	analysisUC analysis.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	// PostgresDB is only needed by the postgres history backend.
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO minio.MinIO

	// Generative AI
	Gemini gemini.IGemini

	// Messaging Configuration
	// KafkaProducer is optional; analysis events are not published without it.
	KafkaProducer pkgKafka.IProducer
	RabbitChannel pkgRabbit.IChannel

	// Authentication & Security Configuration
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// Generative AI
		geminiClient: cfg.Gemini,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,
		rabbitChannel: cfg.RabbitChannel,

		// Authentication & Security Configuration
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,

		renderer: markdown.NewRenderer(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Database Configuration
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.config.History.Backend == config.HistoryBackendPostgres && srv.postgresDB == nil {
		return errors.New("postgresDB is required for the postgres history backend")
	}

	// Storage & Generative AI
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}

	// Messaging Configuration
	if srv.rabbitChannel == nil {
		return errors.New("rabbitChannel is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Monitoring & Notification Configuration (optional)
	// if srv.discord == nil {
	// 	return errors.New("discord is required")
	// }

	return nil
}
