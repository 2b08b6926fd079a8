package config

const (
	HistoryBackendRedis    = "redis"
	HistoryBackendPostgres = "postgres"
)
