package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// DeckGeneratedQueue is the broker queue deck events are published to.
const DeckGeneratedQueue = "deck.generated"

// Publisher sends deck events to RabbitMQ.  Publishing is strictly fire
// and forget: every error is logged and returned so the caller can ignore
// it without interrupting the request that triggered it.  An empty broker
// URL disables the publisher entirely.
type Publisher struct {
	url string
	log *logrus.Logger
}

// NewPublisher builds a Publisher for the given broker URL.
func NewPublisher(url string, log *logrus.Logger) *Publisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Publisher{url: url, log: log}
}

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool { return p.url != "" }

// PublishDeckGenerated declares the durable deck.generated queue and
// publishes one persistent JSON message.  The connection is opened per
// publish; deck generation is far too infrequent to justify keeping a
// channel alive.
func (p *Publisher) PublishDeckGenerated(ctx context.Context, event DeckGeneratedEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warnf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warnf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		DeckGeneratedQueue, // name
		true,               // durable
		false,              // autoDelete
		false,              // exclusive
		false,              // noWait
		nil,                // args
	); err != nil {
		p.log.Warnf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warnf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", DeckGeneratedQueue, false, false, pub); err != nil {
		p.log.Warnf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
