package notify

import "time"

const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
)

// ApplicationEvent is the wire shape for application lifecycle events. It is
// published best-effort after the database write commits; consumers (email
// notifier, websocket feed) must tolerate missing events.
type ApplicationEvent struct {
	Type           string    `json:"type"`
	ApplicationID  int64     `json:"application_id"`
	JobID          int64     `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Sink receives application events. Implementations must not block the
// request path and must swallow their own delivery failures.
type Sink interface {
	Publish(ev ApplicationEvent)
}

// Fanout delivers each event to every sink.
type Fanout []Sink

func (f Fanout) Publish(ev ApplicationEvent) {
	for _, s := range f {
		if s != nil {
			s.Publish(ev)
		}
	}
}
