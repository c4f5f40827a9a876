package booking

import "log/slog"

// Level classifies a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a short user-facing message.
type Notice struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Notifier is a fire-and-forget sink for user-facing notices.
type Notifier interface {
	Notify(n Notice)
}

// LogNotifier writes notices to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(notice Notice) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if notice.Level == LevelError {
		logger.Warn(notice.Text, "component", "booking", "level", notice.Level)
		return
	}
	logger.Info(notice.Text, "component", "booking", "level", notice.Level)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notice) { f(n) }
