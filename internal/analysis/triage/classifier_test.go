package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySingleCategoryTerms(t *testing.T) {
	for _, rule := range rules {
		for _, term := range rule.Terms {
			inputs := []string{
				term,
				strings.ToUpper(term),
				"I think I have " + term + " today",
				"since yesterday, " + strings.ToUpper(term[:1]) + term[1:],
			}
			for _, input := range inputs {
				doc := Classify(input)
				require.Equal(t, rule.Category, doc.Category, "input %q", input)
			}
		}
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	cases := []struct {
		input string
		want  Category
	}{
		{"headache and fever", Headache},
		{"fever and headache", Headache},
		{"I have a fever and a cough", Fever},
		{"cough with stomach cramps", Cold},
		{"nausea and joint pain", Digestive},
		{"muscle ache and a rash", Pain},
		{"migraine, chills, rash, acne", Headache},
	}

	for _, tc := range cases {
		if got := Classify(tc.input).Category; got != tc.want {
			t.Fatalf("Classify(%q) category = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestClassifyFallsBackToClarifyingDocument(t *testing.T) {
	for _, input := range []string{"", "   ", "I feel weird", "asdfgh", "12345"} {
		doc := Classify(input)
		if doc.Category != Unknown {
			t.Fatalf("Classify(%q) category = %s, want unknown", input, doc.Category)
		}
	}
}

func TestClarifyListsQuestionsAndAllCategories(t *testing.T) {
	doc := Clarify()

	questions, ok := doc.Section(SectionQuestions)
	require.True(t, ok)
	require.Len(t, questions.Items, 4)
	require.True(t, questions.Ordered)

	supported, ok := doc.Section(SectionCategories)
	require.True(t, ok)
	require.Len(t, supported.Items, len(Categories()))
	require.Len(t, Categories(), 6)

	for i, rule := range rules {
		require.Contains(t, supported.Items[i].Text, rule.Label)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, input := range []string{"bad headache", "my skin is itchy", "I feel weird"} {
		require.Equal(t, Classify(input), Classify(input))
	}
}

func TestClassifyReturnsIndependentCopies(t *testing.T) {
	first := Classify("headache")
	first.Sections[0].Items[0].Label = "mutated"
	first.Headline[1].Text = "mutated"

	second := Classify("headache")
	if second.Sections[0].Items[0].Label == "mutated" || second.Headline[1].Text == "mutated" {
		t.Fatal("mutating a returned document leaked into the rule table")
	}
}

func TestMatchDoesNotExposeRuleTable(t *testing.T) {
	rule, ok := Match("headache")
	require.True(t, ok)
	require.Equal(t, Headache, rule.Category)

	rule.Terms[0] = "zzz"
	rule.Document.Category = Skin
	rule.Document.Sections[0].Items[0].Label = "mutated"

	for _, r := range Rules() {
		r.Terms[0] = "zzz"
	}

	doc := Classify("I have a headache")
	require.Equal(t, Headache, doc.Category)
	require.NotEqual(t, "mutated", doc.Sections[0].Items[0].Label)
}

func TestRecommendationDocumentShape(t *testing.T) {
	for _, rule := range rules {
		doc := rule.Document
		require.NotEmpty(t, doc.PlainHeadline(), rule.Category)
		require.NotEmpty(t, doc.PlainClosing(), rule.Category)
		require.NotEmpty(t, doc.Referral, rule.Category)

		causes, ok := doc.Section(SectionCauses)
		require.True(t, ok, rule.Category)
		require.GreaterOrEqual(t, len(causes.Items), 3)
		require.LessOrEqual(t, len(causes.Items), 4)

		meds, ok := doc.Section(SectionMedicines)
		require.True(t, ok, rule.Category)
		require.GreaterOrEqual(t, len(meds.Items), 2)

		care, ok := doc.Section(SectionHomeCare)
		require.True(t, ok, rule.Category)
		require.GreaterOrEqual(t, len(care.Items), 3)
		require.LessOrEqual(t, len(care.Items), 4)

		flags, ok := doc.Section(SectionEscalation)
		require.True(t, ok, rule.Category)
		require.GreaterOrEqual(t, len(flags.Items), 3)
		require.LessOrEqual(t, len(flags.Items), 5)
	}
}

func TestSkinClosingRecommendsDermatologist(t *testing.T) {
	doc := Classify("my skin is itchy")
	if doc.Category != Skin {
		t.Fatalf("expected skin document, got %s", doc.Category)
	}
	if !strings.Contains(doc.PlainClosing(), "Dermatologist") {
		t.Fatalf("closing %q does not mention a dermatologist", doc.PlainClosing())
	}
	if doc.Referral != Dermatologist {
		t.Fatalf("unexpected referral %q", doc.Referral)
	}
}

func TestGreeting(t *testing.T) {
	doc := Greeting()
	if doc.Category != Welcome {
		t.Fatalf("unexpected category %s", doc.Category)
	}
	if !strings.HasPrefix(doc.PlainHeadline(), "Hello!") {
		t.Fatalf("unexpected headline %q", doc.PlainHeadline())
	}
}
