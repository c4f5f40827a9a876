package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/pranavthakur-code/get-health-help/internal/handler/stream"
	"github.com/pranavthakur-code/get-health-help/internal/logging"
	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
	chatservice "github.com/pranavthakur-code/get-health-help/internal/service/chat"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 54 * time.Second
	writeWait    = 10 * time.Second
	outboundSize = 64
)

// Handler serves the interactive chat over a websocket.
type Handler struct {
	chatSvc  *chatservice.Service
	doctors  doctor.Store
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// New creates the websocket handler.
func New(chatSvc *chatservice.Service, doctors doctor.Store) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		doctors: doctors,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logging.Component("ws"),
	}
}

// RegisterRoutes mounts the websocket route on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

// TextMessage is the payload of an inbound "message" frame.
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// connection is the per-socket state. Only the write loop touches conn for
// writing; everything else enqueues on out.
type connection struct {
	session *chatservice.Session
	out     chan outgoingMessage
	ctx     context.Context
}

func (c *connection) enqueue(msgType string, data interface{}) bool {
	msg := outgoingMessage{
		Type:      msgType,
		SessionID: c.session.ID(),
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
	select {
	case c.out <- msg:
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "session", sessionID, "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("connection opened", "session", sessionID)
	defer h.logger.Info("connection closed", "session", sessionID)

	ctx, cancel := context.WithCancel(context.Background())
	c := &connection{session: session, out: make(chan outgoingMessage, outboundSize), ctx: ctx}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		h.writeLoop(ctx, conn, c.out)
		// Unblocks the read loop after a failed write.
		_ = conn.Close()
	}()
	defer func() {
		cancel()
		<-done
	}()

	snap, unsubscribe := session.SubscribeWithSnapshot(func(ev chatservice.Event) {
		msgType, data := h.frame(ev)
		msg := outgoingMessage{Type: msgType, SessionID: sessionID, Data: data, Timestamp: time.Now().UnixMilli()}
		if ev.Type == chatservice.EventClosed {
			select {
			case c.out <- msg:
			case <-ctx.Done():
			}
			return
		}
		select {
		case c.out <- msg:
		case <-ctx.Done():
		default:
			h.logger.Warn("dropping frame for slow client", "session", sessionID, "type", msgType)
		}
	})
	defer unsubscribe()

	if !c.enqueue("snapshot", h.snapshot(snap)) {
		return
	}
	if session.Disposed() {
		c.enqueue("closed", map[string]string{"sessionId": sessionID})
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("read error", "session", sessionID, "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if msg.SessionID != "" && msg.SessionID != sessionID {
			c.enqueue("error", map[string]string{"message": "session mismatch"})
			continue
		}
		h.handleMessage(c, &msg)
	}
}

func (h *Handler) handleMessage(c *connection, msg *inboundMessage) {
	switch msg.Type {
	case "message":
		var text TextMessage
		if err := json.Unmarshal(msg.Data, &text); err != nil {
			c.enqueue("error", map[string]string{"message": "invalid message payload"})
			return
		}
		if !c.session.Submit(text.Text) {
			c.enqueue("rejected", map[string]string{"text": text.Text, "reason": rejectReason(c.session, text.Text)})
		}
	case "ping":
		c.enqueue("pong", nil)
	default:
		c.enqueue("error", map[string]string{"message": "unsupported message type: " + msg.Type})
	}
}

func rejectReason(session *chatservice.Session, text string) string {
	switch {
	case session.Disposed():
		return "session closed"
	case strings.TrimSpace(text) == "":
		return "message is empty"
	default:
		return "assistant is still responding"
	}
}

func (h *Handler) frame(ev chatservice.Event) (string, interface{}) {
	switch ev.Type {
	case chatservice.EventAppended:
		return "message", stream.NewMessagePayload(*ev.Message, h.doctors)
	case chatservice.EventClosed:
		return "closed", map[string]string{"sessionId": ev.SessionID}
	}
	return "typing", stream.TypingPayload{Pending: ev.Pending}
}

func (h *Handler) snapshot(snap chat.Snapshot) map[string]any {
	msgs := make([]stream.MessagePayload, 0, len(snap.Messages))
	for _, m := range snap.Messages {
		msgs = append(msgs, stream.NewMessagePayload(m, h.doctors))
	}
	return map[string]any{
		"pending":  snap.Pending,
		"messages": msgs,
	}
}

// writeLoop owns all writes to conn, including keep-alive pings. It stops
// after the "closed" frame.
func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, out <-chan outgoingMessage) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg := <-out:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Warn("write failed", "type", msg.Type, "error", err)
				return
			}
			if msg.Type == "closed" {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"), time.Now().Add(writeWait))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
