package rabbitmq

import (
	"errors"
	"time"
)

const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
)

const (
	ContentTypeJSON    = "application/json"
	ExchangeTypeDirect = "direct"
	ExchangeTypeFanout = "fanout"

	headerDeadLetterExchange = "x-dead-letter-exchange"
)

var ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
