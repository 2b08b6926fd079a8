package rabbitmq

import (
	"fmt"
	"sync"

	"spyglass-srv/config"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect dials RabbitMQ once. Workers pass retryForever so a broker restart
// never stops consumption.
func Connect(l log.Logger, cfg config.RabbitMQConfig, retryForever bool) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		conn, e := rabbitmq.NewRabbitMQ(l, cfg.URL, retryForever)
		if e != nil {
			err = fmt.Errorf("failed to connect to RabbitMQ: %w", e)
			initErr = err
			return
		}
		instance = conn
	})

	return instance, err
}

// GetClient returns the singleton RabbitMQ connection.
func GetClient() rabbitmq.IRabbitMQ {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("RabbitMQ client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck reports whether the connection is up.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ client not initialized")
	}
	if !instance.IsReady() {
		return fmt.Errorf("RabbitMQ connection not ready")
	}
	return nil
}

// Disconnect closes the connection and resets the singleton.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
}
