package render

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
)

const clockLayout = "3:04 PM"

// Clock formats a message timestamp as hour and minute.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// Relative describes t relative to now, e.g. "3 minutes ago".
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Body returns the markdown body of one message.
func Body(m chat.Message) string {
	if m.Document != nil {
		return Document(*m.Document)
	}
	return m.Text
}

// Transcript renders a conversation as markdown, one block per message with
// the author and time as a header line.
func Transcript(msgs []chat.Message) string {
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		var b strings.Builder
		b.WriteString("**")
		b.WriteString(m.Role.DisplayName())
		b.WriteString("** · ")
		b.WriteString(Clock(m.CreatedAt))
		b.WriteString("\n\n")
		b.WriteString(Body(m))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n---\n\n")
}
