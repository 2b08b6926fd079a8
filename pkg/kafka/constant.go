package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3
	DefaultClientID  = "spyglass-srv"

	// HeaderEventType names the event carried by a message.
	HeaderEventType = "event_type"
)

var (
	KafkaVersion = sarama.V2_6_0_0
)
