// Package render turns triage documents and conversations into markdown and
// terminal output.
package render

import (
	"strconv"
	"strings"

	"github.com/pranavthakur-code/get-health-help/internal/analysis/triage"
)

// Document renders d as markdown. Strong spans and item labels are wrapped in
// double asterisks, titled sections with an icon become level-3 headings.
func Document(d triage.Document) string {
	var blocks []string

	if len(d.Headline) > 0 {
		blocks = append(blocks, spans(d.Headline))
	}
	for _, s := range d.Sections {
		if b := section(s); b != "" {
			blocks = append(blocks, b)
		}
	}
	if len(d.Closing) > 0 {
		blocks = append(blocks, spans(d.Closing))
	}
	return strings.Join(blocks, "\n\n")
}

func spans(in []triage.Span) string {
	var b strings.Builder
	for _, s := range in {
		if s.Strong && s.Text != "" {
			b.WriteString("**")
			b.WriteString(s.Text)
			b.WriteString("**")
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

func section(s triage.Section) string {
	if s.Kind == triage.SectionNotice {
		return notice(s)
	}

	var b strings.Builder
	switch {
	case s.Icon != "" && s.Title != "":
		b.WriteString("### ")
		b.WriteString(s.Icon)
		b.WriteString(" ")
		b.WriteString(s.Title)
		b.WriteString("\n")
	case s.Title != "":
		b.WriteString(s.Title)
		b.WriteString("\n")
	}

	for i, it := range s.Items {
		if s.Ordered {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
		} else {
			b.WriteString("- ")
		}
		b.WriteString(item(it))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// notice renders a one-paragraph callout such as "⚠️ **Important:** ...".
func notice(s triage.Section) string {
	parts := make([]string, 0, len(s.Items)+2)
	if s.Icon != "" {
		parts = append(parts, s.Icon)
	}
	if s.Title != "" {
		parts = append(parts, "**"+s.Title+"**")
	}
	for _, it := range s.Items {
		parts = append(parts, item(it))
	}
	return strings.Join(parts, " ")
}

func item(it triage.Item) string {
	switch {
	case it.Label == "":
		return it.Text
	case it.Text == "":
		return "**" + it.Label + "**"
	case strings.HasSuffix(it.Label, ":"):
		return "**" + it.Label + "** " + it.Text
	default:
		return "**" + it.Label + "** - " + it.Text
	}
}
