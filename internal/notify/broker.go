// Package notify connects the process to the MQTT broker: publishing
// post-created notifications and consuming them to keep the denormalized
// per-user post counter up to date.
package notify

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds
)

// Publisher publishes a payload to a topic. Publishing is fire-and-forget:
// if no subscriber is connected the message is dropped by the broker.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Broker owns the single shared MQTT client connection. It is safe for
// concurrent use by all handlers and the consumer.
type Broker struct {
	client mqtt.Client
}

// NewBroker connects to the broker at url. The connection auto-reconnects
// and message acknowledgment is explicit (see Consumer).
func NewBroker(url, clientID string) (*Broker, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(url).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetAutoAckDisabled(true).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Println("Connected to MQTT broker")
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("MQTT connection lost: %v", err)
		})

	client := mqtt.NewClient(opts)

	token := client.Connect()

	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", url)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", url, err)
	}

	return &Broker{client: client}, nil
}

func (b *Broker) Publish(topic string, payload []byte) error {
	token := b.client.Publish(topic, 1, false, payload)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	return nil
}

func (b *Broker) subscribe(topic string, callback mqtt.MessageHandler) error {
	token := b.client.Subscribe(topic, 1, callback)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	return nil
}

func (b *Broker) unsubscribe(topic string) error {
	token := b.client.Unsubscribe(topic)
	token.Wait()

	return token.Error()
}

// Connected reports whether the client currently holds a live connection.
func (b *Broker) Connected() bool {
	return b.client.IsConnectionOpen()
}

// Close disconnects from the broker, allowing in-flight work to drain.
func (b *Broker) Close() {
	b.client.Disconnect(disconnectQuiesce)
}
