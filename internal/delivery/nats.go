package delivery

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NatsNotifier pushes payloads through NATS subjects. Publishes are
// plain core-NATS fire-and-forget: if nobody is subscribed the payload
// is gone, which is exactly the delivery contract.
type NatsNotifier struct {
	nc     *nats.Conn
	logger zerolog.Logger
}

// NewNatsNotifier connects to the NATS server.
func NewNatsNotifier(url string, logger zerolog.Logger) (*NatsNotifier, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NatsNotifier{nc: nc, logger: logger}, nil
}

// Close drains the NATS connection.
func (n *NatsNotifier) Close() {
	if n.nc != nil {
		n.nc.Close()
	}
}

// SendToUser publishes a payload to a user's private channel.
func (n *NatsNotifier) SendToUser(userID, suffix string, payload interface{}) error {
	return n.publish(UserSubject(userID, suffix), payload)
}

// Broadcast publishes a payload to a shared channel.
func (n *NatsNotifier) Broadcast(channel string, payload interface{}) error {
	return n.publish(TopicSubject(channel), payload)
}

func (n *NatsNotifier) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := n.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to subject '%s': %w", subject, err)
	}
	n.logger.Debug().Str("subject", subject).Msg("published payload")
	return nil
}

// SubscribeUser delivers every payload on a user's private channel to
// the handler. The caller owns the subscription and must unsubscribe.
func (n *NatsNotifier) SubscribeUser(userID, suffix string, handler func(data []byte)) (*nats.Subscription, error) {
	return n.subscribe(UserSubject(userID, suffix), handler)
}

// SubscribeBroadcast delivers every payload on a shared channel to the handler.
func (n *NatsNotifier) SubscribeBroadcast(channel string, handler func(data []byte)) (*nats.Subscription, error) {
	return n.subscribe(TopicSubject(channel), handler)
}

func (n *NatsNotifier) subscribe(subject string, handler func(data []byte)) (*nats.Subscription, error) {
	sub, err := n.nc.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject '%s': %w", subject, err)
	}
	return sub, nil
}
