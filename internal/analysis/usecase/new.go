package usecase

import (
	"sync"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l            log.Logger
	historyUC    history.UseCase
	gemini       gemini.IGemini
	producer     analysis.Producer
	newScheduler analysis.SchedulerFactory

	highlightFor time.Duration
	idleTimeout  time.Duration
	now          func() time.Time
	newID        func() string

	mu         sync.Mutex
	workspaces map[string]*workspace
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates the orchestrator. producer may be nil when analysis events are
// not published. Idle workspaces are evicted in the background until Close.
func New(
	l log.Logger,
	historyUC history.UseCase,
	gemini gemini.IGemini,
	producer analysis.Producer,
	newScheduler analysis.SchedulerFactory,
) analysis.UseCase {
	uc := &implUseCase{
		l:            l,
		historyUC:    historyUC,
		gemini:       gemini,
		producer:     producer,
		newScheduler: newScheduler,
		highlightFor: analysis.HighlightDuration,
		idleTimeout:  analysis.DefaultIdleTimeout,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
		workspaces:   make(map[string]*workspace),
		done:         make(chan struct{}),
	}
	go uc.janitor()
	return uc
}
