package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pranavthakur-code/get-health-help/internal/analysis/triage"
	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
)

func TestDocumentClarifyMatchesCanonicalText(t *testing.T) {
	want := `Thank you for sharing your symptoms. To provide better guidance, could you please tell me more about:

1. **Main symptom** - What's bothering you most?
2. **Duration** - How long have you had these symptoms?
3. **Severity** - On a scale of 1-10?
4. **Other symptoms** - Any accompanying issues?

Common symptoms I can help with:
- 🤕 Headaches & Migraines
- 🤒 Fever & Chills
- 🤧 Cold, Cough & Sore Throat
- 🤢 Stomach Issues & Nausea
- 💪 Body Pain & Muscle Aches
- 🩹 Skin Problems & Rashes

Please describe your symptoms in detail, and I'll provide personalized recommendations.`

	require.Equal(t, want, Document(triage.Clarify()))
}

func TestDocumentHeadache(t *testing.T) {
	out := Document(triage.Classify("headache"))

	for _, fragment := range []string{
		"Based on your description of **headache symptoms**, here's my analysis:",
		"### 🔍 Possible Causes:\n- **Tension headache** - Most common, caused by stress or muscle tension",
		"### 💊 Suggested Over-the-Counter Medicines:\n1. **Paracetamol (Tylenol)** - 500-1000mg every 4-6 hours",
		"3. **Aspirin** - 500mg (not for children under 16)",
		"### 🏠 Home Remedies:\n- Rest in a dark, quiet room",
		"### 🚨 See a Doctor If:",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("missing %q in:\n%s", fragment, out)
		}
	}
	if !strings.HasSuffix(out, "\n\nWould you like me to help you find a doctor for consultation?") {
		t.Errorf("unexpected closing:\n%s", out)
	}
}

func TestDocumentLabelWithColon(t *testing.T) {
	out := Document(triage.Classify("cough"))
	require.Contains(t, out, "1. **For dry cough:** Dextromethorphan (Robitussin DM)")
	require.Contains(t, out, "5. **Runny nose:** Antihistamines (Cetirizine, Loratadine)")
}

func TestDocumentLabelOnly(t *testing.T) {
	out := Document(triage.Classify("fever"))
	require.Contains(t, out, "- **Inflammatory conditions**\n")
}

func TestDocumentGreetingNotice(t *testing.T) {
	out := Document(triage.Greeting())
	require.True(t, strings.HasPrefix(out, "Hello! I'm your AI Health Assistant. 👋\n\n"))
	require.Contains(t, out, "⚠️ **Important:** This is not a substitute for professional medical advice.")
	require.True(t, strings.HasSuffix(out, "**How can I help you today?** You can start by telling me about your symptoms."))
}

func TestTranscript(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC)
	doc := triage.Classify("rash")
	msgs := []chat.Message{
		{ID: "1", Role: chat.RoleUser, Text: "I have a rash", CreatedAt: at},
		{ID: "2", Role: chat.RoleAssistant, Document: &doc, CreatedAt: at},
	}

	out := Transcript(msgs)
	require.True(t, strings.HasPrefix(out, "**You** · 3:04 PM\n\nI have a rash"))
	require.Contains(t, out, "\n\n---\n\n**Health Assistant** · 3:04 PM\n\nBased on your **skin symptoms**")
}

func TestRelative(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC)
	require.Equal(t, "3 minutes ago", Relative(now.Add(-3*time.Minute), now))
	require.Equal(t, "now", Relative(now, now))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("expected Style='dark', got %s", opts.Style)
	}

	opts = opts.WithWidth(100).WithStyle("light").WithPreserveNewLines(false)
	if opts.Width != 100 || opts.Style != "light" || opts.PreserveNewLines {
		t.Errorf("unexpected chained options: %+v", opts)
	}
}

func TestTerminal(t *testing.T) {
	out, err := Terminal(triage.Classify("stomach ache"), DefaultOptions().WithStyle("notty"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, word := range []string{"Possible Causes", "Gastritis", "Gastroenterologist"} {
		if !strings.Contains(out, word) {
			t.Errorf("output should contain %q, got: %s", word, out)
		}
	}
}

func TestMarkdownInvalidStyle(t *testing.T) {
	ClearCache()
	_, err := Markdown("# Test", DefaultOptions().WithStyle("nonexistent_style_path"))
	if err == nil {
		t.Error("expected error for invalid style path")
	}
}
