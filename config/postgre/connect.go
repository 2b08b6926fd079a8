package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	"spyglass-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// History rows are one per owner, so the pool stays small.
const (
	connectTimeout     = 5 * time.Second
	pingTimeout        = 2 * time.Second
	maxIdleConns       = 4
	defaultMaxOpenConn = 16
	connMaxLifetime    = 30 * time.Minute
	connMaxIdleTime    = 5 * time.Minute
)

var (
	instance *sql.DB
	mu       sync.RWMutex
)

// MigrateFunc prepares the schema on a freshly opened pool.
type MigrateFunc func(ctx context.Context, db *sql.DB) error

// Connect opens the shared pool and runs migrate on it. A failed attempt
// leaves nothing behind so Connect can be called again.
func Connect(ctx context.Context, cfg config.PostgresConfig, migrate MigrateFunc) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	db, err := sql.Open("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConn
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(min(maxIdleConns, maxOpen))
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	if migrate != nil {
		if err := migrate(connectCtx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	instance = db
	return instance, nil
}

// dsn builds a libpq URL. Credentials are escaped so passwords may hold
// any character.
func dsn(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}

	q := url.Values{}
	q.Set("sslmode", sslMode)
	q.Set("search_path", schema)
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Disconnect closes the shared pool so the next Connect opens a new one.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	if err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	return nil
}

// HealthCheck pings the shared pool with a short timeout.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := instance.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}
