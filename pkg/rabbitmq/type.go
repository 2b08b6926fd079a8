package rabbitmq

import (
	"context"
	"maps"
	"sync"

	"spyglass-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type connectionImpl struct {
	l                   log.Logger
	url                 string
	retryWithoutTimeout bool

	mu         sync.RWMutex
	conn       *amqp.Connection
	isRetrying bool
	reconnects []chan bool
}

// channelImpl swaps its amqp channel after every reconnect.
type channelImpl struct {
	conn *connectionImpl

	mu sync.RWMutex
	ch *amqp.Channel
}

type ExchangeArgs struct {
	Name       string
	Type       string
	Durable    bool
	AutoDelete bool
	NoWait     bool
	Args       map[string]interface{}
}

func (e ExchangeArgs) spread() (name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) {
	return e.Name, e.Type, e.Durable, e.AutoDelete, false, e.NoWait, e.Args
}

// QueueArgs declares a queue. Messages rejected without requeue go to
// DeadLetterExchange when it is set.
type QueueArgs struct {
	Name               string
	Durable            bool
	AutoDelete         bool
	Exclusive          bool
	NoWait             bool
	DeadLetterExchange string
	Args               map[string]interface{}
}

func (q QueueArgs) table() amqp.Table {
	if q.DeadLetterExchange == "" {
		return q.Args
	}
	t := amqp.Table{}
	maps.Copy(t, q.Args)
	t[headerDeadLetterExchange] = q.DeadLetterExchange
	return t
}

func (q QueueArgs) spread() (name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) {
	return q.Name, q.Durable, q.AutoDelete, q.Exclusive, q.NoWait, q.table()
}

// Publishing is amqp.Publishing so callers need not import amqp091.
type Publishing = amqp.Publishing

type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Msg        Publishing
}

func (p PublishArgs) spread(ctx context.Context) (c context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) {
	return ctx, p.Exchange, p.RoutingKey, p.Mandatory, false, p.Msg
}

type ConsumeArgs struct {
	Queue     string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoWait    bool
	Args      map[string]interface{}
}

func (c ConsumeArgs) spread() (queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) {
	return c.Queue, c.Consumer, c.AutoAck, c.Exclusive, false, c.NoWait, c.Args
}

type QueueBindArgs struct {
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Args       map[string]interface{}
}

func (q QueueBindArgs) spread() (queue, key, exchange string, noWait bool, args amqp.Table) {
	return q.Queue, q.RoutingKey, q.Exchange, q.NoWait, q.Args
}
