package producer

import (
	"spyglass-srv/internal/analysis"
	pkgKafka "spyglass-srv/pkg/kafka"
	"spyglass-srv/pkg/log"
)

type Producer interface {
	analysis.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
