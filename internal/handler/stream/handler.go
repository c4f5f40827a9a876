package stream

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pranavthakur-code/get-health-help/internal/logging"
	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
	chatService "github.com/pranavthakur-code/get-health-help/internal/service/chat"
	"github.com/pranavthakur-code/get-health-help/pkg/utils"
)

const (
	eventBuffer       = 64
	keepAliveInterval = 15 * time.Second
)

// Handler pushes session events to browsers via Server-Sent Events.
type Handler struct {
	chatSvc   *chatService.Service
	doctors   doctor.Store
	keepAlive time.Duration
	logger    *slog.Logger
}

// New creates a stream handler.
func New(chatSvc *chatService.Service, doctors doctor.Store) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		doctors:   doctors,
		keepAlive: keepAliveInterval,
		logger:    logging.Component("stream"),
	}
}

// RegisterRoutes mounts the stream route on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions/{sessionID}/stream", h.handleStream)
}

// handleStream sends a "snapshot" event, then "message" and "typing" events
// until the client goes away or the session is disposed.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	events := make(chan chatService.Event, eventBuffer)
	closed := make(chan struct{})
	snap, cancel := session.SubscribeWithSnapshot(func(ev chatService.Event) {
		if ev.Type == chatService.EventClosed {
			close(closed)
			return
		}
		select {
		case events <- ev:
		default:
			h.logger.Warn("dropping event for slow client", "session", sessionID, "type", ev.Type)
		}
	})
	defer cancel()

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	h.logger.Info("stream opened", "session", sessionID)
	defer h.logger.Info("stream closed", "session", sessionID)

	if err := utils.SendSSEEvent(w, flusher, "snapshot", h.snapshot(snap)); err != nil {
		return
	}
	if session.Disposed() {
		h.sendClosed(w, flusher, sessionID)
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if err := h.send(w, flusher, ev); err != nil {
				return
			}
		case <-closed:
			if h.flush(w, flusher, events) == nil {
				h.sendClosed(w, flusher, sessionID)
			}
			return
		case <-ticker.C:
			if err := utils.SendSSEComment(w, flusher, "keep-alive"); err != nil {
				return
			}
		}
	}
}

// flush sends the events queued before the session closed.
func (h *Handler) flush(w http.ResponseWriter, flusher http.Flusher, events <-chan chatService.Event) error {
	for {
		select {
		case ev := <-events:
			if err := h.send(w, flusher, ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (h *Handler) sendClosed(w http.ResponseWriter, flusher http.Flusher, sessionID string) {
	_ = utils.SendSSEEvent(w, flusher, "closed", map[string]string{"sessionId": sessionID})
}

func (h *Handler) send(w http.ResponseWriter, flusher http.Flusher, ev chatService.Event) error {
	switch ev.Type {
	case chatService.EventAppended:
		return utils.SendSSEEvent(w, flusher, "message", NewMessagePayload(*ev.Message, h.doctors))
	case chatService.EventPending:
		return utils.SendSSEEvent(w, flusher, "typing", TypingPayload{Pending: ev.Pending})
	}
	return nil
}

type snapshotPayload struct {
	ID       string           `json:"id"`
	Pending  bool             `json:"pending"`
	Messages []MessagePayload `json:"messages"`
}

func (h *Handler) snapshot(snap chat.Snapshot) snapshotPayload {
	return snapshotPayload{
		ID:       snap.ID,
		Pending:  snap.Pending,
		Messages: h.payloads(snap.Messages),
	}
}

func (h *Handler) payloads(msgs []chat.Message) []MessagePayload {
	out := make([]MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewMessagePayload(m, h.doctors))
	}
	return out
}
