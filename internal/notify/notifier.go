package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"work-wizard/internal/infrastructure/queue"
)

// Notifier consumes application events and mails the applicant on status
// changes. Malformed or unhandled messages are acked and dropped; a failed
// send is logged and acked too, there is no redelivery.
type Notifier struct {
	queue  *queue.Client
	mailer Mailer
	logger *slog.Logger

	dashboardURL string
}

func NewNotifier(q *queue.Client, mailer Mailer, dashboardURL string, logger *slog.Logger) *Notifier {
	return &Notifier{queue: q, mailer: mailer, logger: logger, dashboardURL: dashboardURL}
}

func (n *Notifier) Run(ctx context.Context) error {
	deliveries, err := n.queue.Consume("work-wizard-notifier")
	if err != nil {
		return err
	}

	n.logger.Info("notifier consuming application events")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			n.handle(d.Body)
			_ = d.Ack(false)
		}
	}
}

func (n *Notifier) handle(body []byte) {
	var ev ApplicationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		n.logger.Warn("drop malformed event", "error", err)
		return
	}
	if ev.Type != EventApplicationStatusChanged {
		return
	}
	if ev.ApplicantEmail == "" {
		n.logger.Warn("drop status event without applicant email", "application_id", ev.ApplicationID)
		return
	}

	html, err := RenderStatusEmail(ev.ApplicantName, ev.JobTitle, n.dashboardURL, ev.Status, time.Now())
	if err != nil {
		n.logger.Error("render status email", "application_id", ev.ApplicationID, "error", err)
		return
	}

	if err := n.mailer.Send(ev.ApplicantEmail, StatusEmailSubject(ev.JobTitle), html); err != nil {
		n.logger.Warn("send status email",
			"application_id", ev.ApplicationID,
			"status", ev.Status,
			"error", err,
		)
		return
	}

	n.logger.Info("status email sent",
		"application_id", ev.ApplicationID,
		"status", ev.Status,
	)
}
