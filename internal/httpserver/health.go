package httpserver

import (
	"net/http"

	"spyglass-srv/config"
	configKafka "spyglass-srv/config/kafka"
	configPostgre "spyglass-srv/config/postgre"
	configRabbit "spyglass-srv/config/rabbitmq"
	configRedis "spyglass-srv/config/redis"
	"spyglass-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Spyglass competitive intelligence API"
	HealthVersion = "1.0.0"
	ServiceName   = "spyglass-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

type dependencyCheck struct {
	name  string
	check func() error
}

// readyCheck handles readiness check requests. Postgres is only checked when
// it backs history.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	checks := []dependencyCheck{
		{"redis", func() error { return configRedis.HealthCheck(ctx) }},
		{"minio", func() error { return srv.minioClient.HealthCheck(ctx) }},
		{"rabbitmq", configRabbit.HealthCheck},
		{"kafka", configKafka.HealthCheck},
	}
	if srv.config.History.Backend == config.HistoryBackendPostgres {
		checks = append(checks, dependencyCheck{"postgres", func() error { return configPostgre.HealthCheck(ctx) }})
	}

	deps := gin.H{}
	for _, dep := range checks {
		if err := dep.check(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", dep.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": dep.name + " connection failed",
				"error":   err.Error(),
			})
			return
		}
		deps[dep.name] = "connected"
	}
	if srv.kafkaProducer == nil {
		deps["kafka"] = "disabled"
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"history":      srv.config.History.Backend,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
