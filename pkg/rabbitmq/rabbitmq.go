package rabbitmq

import (
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// DefaultPublishTimeout bounds how long Publish waits when PublishTimeout is not set.
const DefaultPublishTimeout = 2 * time.Second

// ErrPublishTimeout is returned when a message could not be handed to the broker in time.
// The message is dropped.
var ErrPublishTimeout = errors.New("RabbitMQ publish timed out")

// Client holds the RabbitMQ connection and channel used to publish catalog events.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// lock is a one-slot semaphore guarding channel. amqp.Channel is not safe for
	// concurrent publishes, and a channel lets callers give up waiting.
	lock    chan struct{}
	timeout time.Duration
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
	// Exchanges are declared as durable topic exchanges on connect.
	Exchanges []string
	// PublishTimeout caps the time a Publish call may block the caller.
	PublishTimeout time.Duration
}

func newClient(conn *amqp.Connection, ch *amqp.Channel, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Client{
		conn:    conn,
		channel: ch,
		lock:    make(chan struct{}, 1),
		timeout: timeout,
	}
}

// NewClient connects to RabbitMQ, opens a channel and declares the configured exchanges.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, exchange := range cfg.Exchanges {
		err = ch.ExchangeDeclare(
			exchange, // name
			"topic",  // kind
			true,     // durable
			false,    // auto-deleted
			false,    // internal
			false,    // no-wait
			nil,      // arguments
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	log.Printf("RabbitMQ client connected, exchanges declared: %v", cfg.Exchanges)

	return newClient(conn, ch, cfg.PublishTimeout), nil
}

// Close closes the RabbitMQ connection and channel.
// It waits for an in-flight publish to finish.
func (c *Client) Close() error {
	c.lock <- struct{}{}
	defer func() { <-c.lock }()

	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
		c.conn = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message to exchange with routingKey.
// It never blocks longer than the publish timeout: when the broker throttles and
// the channel stays busy, the message is dropped with ErrPublishTimeout.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case c.lock <- struct{}{}:
	case <-timer.C:
		return fmt.Errorf("%s event dropped, channel busy: %w", routingKey, ErrPublishTimeout)
	}

	if c.channel == nil {
		<-c.lock
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	// The publish keeps the lock until the broker accepts the write, even after the caller gave up.
	done := make(chan error, 1)
	go func(ch *amqp.Channel) {
		defer func() { <-c.lock }()
		done <- ch.Publish(
			exchange,   // exchange
			routingKey, // routing key
			false,      // mandatory
			false,      // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Body:         body,
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
			})
	}(c.channel)

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish message: %w", err)
		}
	case <-timer.C:
		return fmt.Errorf("%s event dropped, broker not accepting: %w", routingKey, ErrPublishTimeout)
	}

	log.Printf(" [x] Sent %s event: %s", routingKey, body)
	return nil
}
