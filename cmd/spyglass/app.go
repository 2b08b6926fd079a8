package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	configGemini "spyglass-srv/config/gemini"
	configSQLite "spyglass-srv/config/sqlite"
	"spyglass-srv/internal/analysis"
	analysisUsecase "spyglass-srv/internal/analysis/usecase"
	"spyglass-srv/internal/history"
	historySQLite "spyglass-srv/internal/history/repository/sqlite"
	historyUsecase "spyglass-srv/internal/history/usecase"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/narration"
	narrationUsecase "spyglass-srv/internal/narration/usecase"
	"spyglass-srv/internal/presentation"
	presentationUsecase "spyglass-srv/internal/presentation/usecase"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/locale"
	"spyglass-srv/pkg/markdown"
)

// localOwner is the single workspace owner of the CLI.
const localOwner = "local"

var errMissingAPIKey = errors.New("gemini api key is not configured (set GEMINI_API_KEY or api_key in spyglass-config.yaml)")

// app wires the same history, orchestrator and presentation pipeline as the
// API, backed by SQLite and a narration directory.
type app struct {
	db        *sql.DB
	historyUC history.UseCase
	uc        analysis.UseCase
	scope     model.Scope
	ctx       context.Context
	out       *printer

	// clips receives every narration clip once its file is written.
	clips chan narration.Clip
	once  sync.Once
}

type appOptions struct {
	needGemini bool
	narrate    bool
}

func newApp(ctx context.Context, out *printer, opts appOptions) (*app, error) {
	ctx = locale.SetLocaleToContext(ctx, locale.ParseLang(lang))

	db, err := configSQLite.Open(ctx, cfg.SQLite)
	if err != nil {
		return nil, err
	}

	var client gemini.IGemini
	if opts.needGemini {
		if cfg.Gemini.APIKey == "" {
			_ = db.Close()
			return nil, errMissingAPIKey
		}
		client, err = configGemini.Connect(cfg.Gemini)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	a := &app{
		db:        db,
		historyUC: historyUsecase.New(historySQLite.New(db, logger), logger),
		scope:     model.Scope{UserID: localOwner, Role: model.RoleLocal},
		ctx:       ctx,
		out:       out,
		clips:     make(chan narration.Clip, 16),
	}

	narrate := opts.narrate && cfg.Presentation.NarrationEnabled && client != nil
	renderer := markdown.NewRenderer()
	newScheduler := func(owner string) presentation.Scheduler {
		hub := presentationUsecase.NewHub()

		var player narration.Player
		if narrate {
			output, err := narrationUsecase.NewFileOutput(narrationDir, a.onClip)
			if err != nil {
				logger.Warnf(ctx, "spyglass.newScheduler: narration disabled: %v", err)
			} else {
				player = narrationUsecase.New(logger, client, output, nil, narrationUsecase.Config{
					Owner: owner,
					Voice: cfg.Gemini.Voice,
				})
			}
		}

		return presentationUsecase.New(logger, hub, player, renderer, presentation.Config{
			RevealInterval:   cfg.Presentation.RevealInterval,
			NarrationLimit:   cfg.Presentation.NarrationMaxChars,
			NarrationEnabled: player != nil,
		})
	}

	a.uc = analysisUsecase.New(logger, a.historyUC, client, nil, newScheduler)
	return a, nil
}

func (a *app) onClip(path string, clip narration.Clip) {
	a.out.narration(path, clip)
	select {
	case a.clips <- clip:
	default:
	}
}

func (a *app) close() {
	a.once.Do(func() {
		a.uc.Close()
		if err := a.db.Close(); err != nil {
			logger.Warnf(a.ctx, "spyglass.close: closing database: %v", err)
		}
	})
}
