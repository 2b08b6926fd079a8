package gemini

import (
	"fmt"
	"sync"
	"time"

	"spyglass-srv/config"
	"spyglass-srv/pkg/gemini"
)

var (
	instance gemini.IGemini
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the Gemini client using singleton pattern.
func Connect(cfg config.GeminiConfig) (gemini.IGemini, error) {
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
		client, e := gemini.NewGemini(gemini.GeminiConfig{
			APIKey:             cfg.APIKey,
			APIRoot:            cfg.APIRoot,
			Model:              cfg.Model,
			SpeechModel:        cfg.SpeechModel,
			ImageModel:         cfg.ImageModel,
			VideoModel:         cfg.VideoModel,
			TranscriptionModel: cfg.TranscriptionModel,
			RequestsPerSecond:  cfg.RequestsPerSecond,
			Burst:              cfg.Burst,
			Timeout:            time.Duration(cfg.Timeout) * time.Second,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Gemini client: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the singleton Gemini client.
func GetClient() gemini.IGemini {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("Gemini client not initialized. Call Connect() first")
	}
	return instance
}
