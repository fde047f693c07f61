package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const messageBuffer = 64

// Handler processes one decoded post-created notification. A non-nil error
// is logged and the message is dropped; there are no retries.
type Handler func(ctx context.Context, msg PostCreated) error

// Consumer is the persistent subscriber task for the new_post topic. The
// broker callback only enqueues; a single worker goroutine drains the
// queue, runs the handlers, and acknowledges each message explicitly.
type Consumer struct {
	broker   *Broker
	handlers []Handler
	messages chan mqtt.Message
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewConsumer creates a consumer delivering new_post messages to handlers.
func NewConsumer(broker *Broker, handlers ...Handler) *Consumer {
	ctx, cancel := context.WithCancel(context.Background())

	return &Consumer{
		broker:   broker,
		handlers: handlers,
		messages: make(chan mqtt.Message, messageBuffer),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start subscribes to the topic and launches the worker.
func (c *Consumer) Start() error {
	if err := c.broker.subscribe(TopicNewPost, c.enqueue); err != nil {
		return err
	}

	c.wg.Add(1)
	go c.run()

	log.Printf("Consumer subscribed to topic %s", TopicNewPost)
	return nil
}

// Stop unsubscribes, stops the worker, and waits for it to finish.
func (c *Consumer) Stop() {
	if err := c.broker.unsubscribe(TopicNewPost); err != nil {
		log.Printf("Failed to unsubscribe from %s: %v", TopicNewPost, err)
	}

	c.cancel()
	c.wg.Wait()
}

func (c *Consumer) enqueue(_ mqtt.Client, msg mqtt.Message) {
	select {
	case c.messages <- msg:
	default:
		log.Printf("Message buffer full, dropping message on %s", msg.Topic())
	}
}

func (c *Consumer) run() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		case msg := <-c.messages:
			c.process(msg.Payload())
			msg.Ack()
		}
	}
}

// process decodes one payload and runs every handler. Malformed payloads
// and handler errors are logged and dropped.
func (c *Consumer) process(payload []byte) {
	var msg PostCreated

	if err := json.Unmarshal(payload, &msg); err != nil {
		log.Printf("Failed to decode message on %s: %v", TopicNewPost, err)
		return
	}

	for _, handler := range c.handlers {
		if err := handler(c.ctx, msg); err != nil {
			log.Printf("Failed to handle message on %s: %v", TopicNewPost, err)
		}
	}
}
