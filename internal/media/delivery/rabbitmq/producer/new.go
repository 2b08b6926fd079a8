package producer

import (
	"time"

	"spyglass-srv/internal/media"
	"spyglass-srv/pkg/log"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"
)

type Producer interface {
	media.Producer
	// Setup declares the exchange jobs are published to.
	Setup() error
}

type implProducer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	exchange string
	now      func() time.Time
}

func New(l log.Logger, ch pkgRabbit.IChannel, exchange string) Producer {
	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
		now:      time.Now,
	}
}
