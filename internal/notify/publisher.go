package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"work-wizard/internal/infrastructure/queue"
)

// QueuePublisher forwards application events to RabbitMQ. Delivery is
// attempted once; a broker outage is logged and the event is dropped.
type QueuePublisher struct {
	queue   *queue.Client
	logger  *slog.Logger
	timeout time.Duration
}

func NewQueuePublisher(q *queue.Client, logger *slog.Logger) *QueuePublisher {
	return &QueuePublisher{queue: q, logger: logger, timeout: 5 * time.Second}
}

func (p *QueuePublisher) Publish(ev ApplicationEvent) {
	if p.queue == nil {
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("marshal application event", "type", ev.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.queue.Publish(ctx, ev.Type, body); err != nil {
		p.logger.Warn("publish application event",
			"type", ev.Type,
			"application_id", ev.ApplicationID,
			"error", err,
		)
	}
}
