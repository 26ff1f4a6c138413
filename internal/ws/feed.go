package ws

import (
	"encoding/json"
	"log/slog"

	"work-wizard/internal/notify"
)

// Feed mirrors application events onto the websocket hub so recruiter
// dashboards update live.
type Feed struct {
	hub    *Hub
	logger *slog.Logger
}

func NewFeed(hub *Hub, logger *slog.Logger) *Feed {
	return &Feed{hub: hub, logger: logger}
}

func (f *Feed) Publish(ev notify.ApplicationEvent) {
	if f == nil || f.hub == nil {
		return
	}

	b, err := json.Marshal(ev)
	if err != nil {
		f.logger.Error("marshal ws event", "type", ev.Type, "error", err)
		return
	}
	f.hub.Broadcast(b)
}

var _ notify.Sink = (*Feed)(nil)
