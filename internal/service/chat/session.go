package chat

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pranavthakur-code/get-health-help/internal/analysis/triage"
	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
)

// DefaultThinkingDelay is how long a reply is held back before it is appended.
const DefaultThinkingDelay = time.Second

// NoThinkingDelay makes replies immediate.
const NoThinkingDelay time.Duration = -1

// EventType names a session notification.
type EventType string

const (
	// EventAppended fires after a message has been appended to the log.
	EventAppended EventType = "appended"
	// EventPending fires whenever the busy flag flips.
	EventPending EventType = "pending"
	// EventClosed fires once, when the session is disposed.
	EventClosed EventType = "closed"
)

// Event is delivered to session listeners.
type Event struct {
	Type      EventType
	SessionID string
	Message   *chat.Message
	Pending   bool
}

func (e Event) clone() Event {
	if e.Message != nil {
		msg := cloneMessage(*e.Message)
		e.Message = &msg
	}
	return e
}

// Listener receives session events in the order they happened. Each
// listener gets its own copy of the message.
type Listener func(Event)

// Options configures a Session. Zero values fall back to defaults; a negative
// ThinkingDelay replies immediately.
type Options struct {
	ThinkingDelay time.Duration
	Classify      func(string) triage.Document
	Scheduler     Scheduler
	Now           func() time.Time
	NewID         func() string
	Logger        *slog.Logger
}

func (o Options) withDefaults() Options {
	switch {
	case o.ThinkingDelay == 0:
		o.ThinkingDelay = DefaultThinkingDelay
	case o.ThinkingDelay < 0:
		o.ThinkingDelay = 0
	}
	if o.Classify == nil {
		o.Classify = triage.Classify
	}
	if o.Scheduler == nil {
		o.Scheduler = wallScheduler{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Session owns one conversation: an append-only message log and a busy flag.
// At most one classification is in flight; the reply is appended after the
// thinking delay unless the session has been disposed.
type Session struct {
	id   string
	opts Options

	mu           sync.Mutex
	messages     []chat.Message
	pending      bool
	disposed     bool
	token        uint64
	timer        Timer
	listeners    map[int]Listener
	nextListener int
	lastActivity time.Time
	queue        []delivery
	draining     bool
}

// delivery pairs an event with the listeners registered when it happened.
type delivery struct {
	event     Event
	listeners []Listener
}

// NewSession creates a session seeded with the welcome message.
func NewSession(id string, opts Options) *Session {
	opts = opts.withDefaults()
	if id == "" {
		id = opts.NewID()
	}

	s := &Session{
		id:        id,
		opts:      opts,
		messages:  make([]chat.Message, 0, 16),
		listeners: make(map[int]Listener),
	}
	greeting := triage.Greeting()
	s.messages = append(s.messages, s.newMessage(chat.RoleAssistant, "", &greeting))
	s.lastActivity = opts.Now()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit appends a user message and schedules the reply. It reports false,
// changing nothing, when text is blank, a reply is pending or the session
// has been disposed.
func (s *Session) Submit(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.mu.Lock()
	if s.disposed || s.pending {
		s.mu.Unlock()
		return false
	}

	msg := s.newMessage(chat.RoleUser, trimmed, nil)
	s.messages = append(s.messages, msg)
	s.pending = true
	s.lastActivity = msg.CreatedAt
	s.token++
	token := s.token
	s.timer = s.opts.Scheduler.AfterFunc(s.opts.ThinkingDelay, func() {
		s.complete(token, text)
	})

	s.deliver(
		Event{Type: EventAppended, SessionID: s.id, Message: &msg},
		Event{Type: EventPending, SessionID: s.id, Pending: true},
	)
	return true
}

// complete runs when the thinking delay elapses. Stale tokens are ignored.
func (s *Session) complete(token uint64, input string) {
	s.mu.Lock()
	if s.disposed || token != s.token || !s.pending {
		s.mu.Unlock()
		s.opts.Logger.Debug("dropping stale reply", "component", "chat", "session", s.id)
		return
	}

	doc := s.opts.Classify(input)
	msg := s.newMessage(chat.RoleAssistant, "", &doc)
	s.messages = append(s.messages, msg)
	s.pending = false
	s.timer = nil
	s.lastActivity = msg.CreatedAt

	s.opts.Logger.Debug("reply appended", "component", "chat", "session", s.id, "category", doc.Category)
	s.deliver(
		Event{Type: EventAppended, SessionID: s.id, Message: &msg},
		Event{Type: EventPending, SessionID: s.id, Pending: false},
	)
}

// deliver queues events for the listeners registered right now. Callers
// hold mu; it is released here. Whichever goroutine finds the queue idle
// drains it, so events reach listeners in log order and listeners may call
// back into the session. A listener added later never sees an older event.
func (s *Session) deliver(events ...Event) {
	s.deliverTo(s.activeListeners(), events...)
}

func (s *Session) deliverTo(listeners []Listener, events ...Event) {
	for _, ev := range events {
		s.queue = append(s.queue, delivery{event: ev, listeners: listeners})
	}
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.queue) > 0 {
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, d := range batch {
			for _, l := range d.listeners {
				l(d.event.clone())
			}
		}

		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}

func (s *Session) activeListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextListener; i++ {
		if l, ok := s.listeners[i]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Dispose disarms any scheduled reply, sends EventClosed and detaches
// listeners. Later submissions and completions are no-ops.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	s.token++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	listeners := s.activeListeners()
	s.listeners = make(map[int]Listener)
	s.queue = nil
	s.opts.Logger.Debug("session disposed", "component", "chat", "session", s.id)

	s.deliverTo(listeners, Event{Type: EventClosed, SessionID: s.id})
}

// Subscribe registers l and returns a function that removes it.
func (s *Session) Subscribe(l Listener) func() {
	_, cancel := s.SubscribeWithSnapshot(l)
	return cancel
}

// SubscribeWithSnapshot registers l and returns the state it starts from.
// Every event l receives happened after the snapshot. On a disposed session
// l is not registered.
func (s *Session) SubscribeWithSnapshot(l Listener) (chat.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	if s.disposed {
		return snap, func() {}
	}
	key := s.nextListener
	s.nextListener++
	s.listeners[key] = l

	return snap, func() {
		s.mu.Lock()
		delete(s.listeners, key)
		s.mu.Unlock()
	}
}

// Messages returns a deep copy of the log in insertion order.
func (s *Session) Messages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMessages(s.messages)
}

// IsPending reports whether a reply is being prepared.
func (s *Session) IsPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Disposed reports whether Dispose has been called.
func (s *Session) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// LastActivity returns the time of the most recent append.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Snapshot returns the id, busy flag and messages together.
func (s *Session) Snapshot() chat.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() chat.Snapshot {
	return chat.Snapshot{ID: s.id, Pending: s.pending, Messages: copyMessages(s.messages)}
}

func copyMessages(msgs []chat.Message) []chat.Message {
	out := make([]chat.Message, len(msgs))
	for i, m := range msgs {
		out[i] = cloneMessage(m)
	}
	return out
}

func cloneMessage(m chat.Message) chat.Message {
	if m.Document != nil {
		doc := m.Document.Clone()
		m.Document = &doc
	}
	return m
}

func (s *Session) newMessage(role chat.Role, text string, doc *triage.Document) chat.Message {
	return chat.Message{
		ID:        s.opts.NewID(),
		Role:      role,
		Text:      text,
		Document:  doc,
		CreatedAt: s.opts.Now(),
	}
}
