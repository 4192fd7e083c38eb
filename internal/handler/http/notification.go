package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
	keepalive    time.Duration
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
		keepalive:    30 * time.Second,
	}
}

// Stream pushes the session's notices as server-sent events until the client goes away.
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	notices, stop, err := h.notifService.Subscribe(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer stop()

	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Accel-Buffering", "no")

	writeEvent(w, flusher, "", notification.EventConnected, map[string]string{
		"status":  "connected",
		"session": sess.Key(),
	})

	ping := time.NewTicker(h.keepalive)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, open := <-notices:
			if !open {
				return
			}
			writeEvent(w, flusher, n.ID, notification.EventNotice, n)
		case t := <-ping.C:
			writeEvent(w, flusher, "", notification.EventPing, map[string]int64{"timestamp": t.Unix()})
		}
	}
}

func writeEvent(w http.ResponseWriter, f http.Flusher, id, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("sse encode error", "event", event, "error", err)
		return
	}
	if id != "" {
		fmt.Fprintf(w, "id: %s\n", id)
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	f.Flush()
}
