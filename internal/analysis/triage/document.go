package triage

import "strings"

// Category identifies the symptom group a recommendation belongs to.
type Category string

const (
	Headache  Category = "headache"
	Fever     Category = "fever"
	Cold      Category = "cold"
	Digestive Category = "digestive"
	Pain      Category = "pain"
	Skin      Category = "skin"
	// Unknown marks the clarifying document returned when no rule matches.
	Unknown Category = "unknown"
	// Welcome marks the greeting seeded into every new conversation.
	Welcome Category = "welcome"
)

// SectionKind tags the role of a section inside a Document.
type SectionKind string

const (
	SectionCauses     SectionKind = "causes"
	SectionMedicines  SectionKind = "medicines"
	SectionHomeCare   SectionKind = "home_care"
	SectionEscalation SectionKind = "escalation"
	SectionQuestions  SectionKind = "questions"
	SectionCategories SectionKind = "categories"
	SectionNotice     SectionKind = "notice"
)

// Span is a run of inline text, optionally emphasised.
type Span struct {
	Text   string `json:"text"`
	Strong bool   `json:"strong,omitempty"`
}

// Item is one bullet. Label is rendered emphasised ahead of Text when present.
type Item struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Section is a titled list of items.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Icon    string      `json:"icon,omitempty"`
	Title   string      `json:"title"`
	Ordered bool        `json:"ordered,omitempty"`
	Items   []Item      `json:"items"`
}

// Document is the structured assistant reply. Markup is left to the renderer.
type Document struct {
	Category Category  `json:"category"`
	Headline []Span    `json:"headline"`
	Sections []Section `json:"sections"`
	Closing  []Span    `json:"closing"`
	// Referral names the doctor specialty the closing line points at, if any.
	Referral string `json:"referral,omitempty"`
}

// Section returns the first section of the given kind.
func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// PlainHeadline joins the headline spans without emphasis markers.
func (d Document) PlainHeadline() string {
	return joinSpans(d.Headline)
}

// PlainClosing joins the closing spans without emphasis markers.
func (d Document) PlainClosing() string {
	return joinSpans(d.Closing)
}

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Clone returns a deep copy. Documents handed out of the rule table or a
// conversation log are always clones.
func (d Document) Clone() Document {
	out := d
	out.Headline = append([]Span(nil), d.Headline...)
	out.Closing = append([]Span(nil), d.Closing...)
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		s.Items = append([]Item(nil), s.Items...)
		out.Sections[i] = s
	}
	return out
}
