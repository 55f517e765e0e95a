// Package queue publishes ingest messages to a Pub/Sub topic. Publishing is
// synchronous: the call returns only after the broker acknowledges the
// message, so a 200 from the upload endpoint guarantees the worker will see
// the notification. Redelivery semantics belong to the queue, not to this
// process; there is no retry loop here.
package queue

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// Publisher wraps one Pub/Sub topic.
type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPublisher connects to Pub/Sub and binds the topic.
func NewPublisher(ctx context.Context, projectID, topicID string) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return &Publisher{client: client, topic: client.Topic(topicID)}, nil
}

// Close flushes the topic and releases the connection.
func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}

// Publish sends payload to the topic and blocks until the broker assigns a
// server id (the delivery acknowledgment).
func (p *Publisher) Publish(ctx context.Context, payload []byte) (string, error) {
	res := p.topic.Publish(ctx, &pubsub.Message{Data: payload})
	id, err := res.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", p.topic.ID(), err)
	}
	return id, nil
}
