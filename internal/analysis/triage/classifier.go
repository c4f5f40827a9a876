// Package triage maps free-text symptom descriptions onto a fixed, ordered
// set of categories and returns the matching recommendation document.
package triage

import "strings"

// Classify returns the document of the first rule with a term contained in
// input, compared case-insensitively. Inputs matching no rule, including the
// empty string, get the clarifying document.
func Classify(input string) Document {
	if rule, ok := lookup(input); ok {
		return rule.Document.Clone()
	}
	return Clarify()
}

// Match reports a copy of the first rule whose term set hits input.
func Match(input string) (Rule, bool) {
	rule, ok := lookup(input)
	if !ok {
		return Rule{}, false
	}
	return rule.clone(), true
}

func lookup(input string) (*Rule, bool) {
	normalized := strings.ToLower(input)
	for i := range rules {
		for _, term := range rules[i].Terms {
			if strings.Contains(normalized, term) {
				return &rules[i], true
			}
		}
	}
	return nil, false
}

// Categories lists the supported categories in evaluation order.
func Categories() []Category {
	out := make([]Category, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.Category)
	}
	return out
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, rule := range rules {
		out[i] = rule.clone()
	}
	return out
}

// Clarify builds the fallback document asking for more detail.
func Clarify() Document {
	supported := make([]Item, 0, len(rules))
	for _, rule := range rules {
		supported = append(supported, Item{Text: categoryIcons[rule.Category] + " " + rule.Label})
	}

	return Document{
		Category: Unknown,
		Headline: plain("Thank you for sharing your symptoms. To provide better guidance, could you please tell me more about:"),
		Sections: []Section{
			{
				Kind:    SectionQuestions,
				Ordered: true,
				Items: []Item{
					li("Main symptom", "What's bothering you most?"),
					li("Duration", "How long have you had these symptoms?"),
					li("Severity", "On a scale of 1-10?"),
					li("Other symptoms", "Any accompanying issues?"),
				},
			},
			{
				Kind:  SectionCategories,
				Title: "Common symptoms I can help with:",
				Items: supported,
			},
		},
		Closing: plain("Please describe your symptoms in detail, and I'll provide personalized recommendations."),
	}
}

// Greeting builds the welcome document seeded into a new conversation.
func Greeting() Document {
	return Document{
		Category: Welcome,
		Headline: plain("Hello! I'm your AI Health Assistant. 👋"),
		Sections: []Section{
			{
				Kind:  SectionCategories,
				Title: "I can help you understand your symptoms and provide general health guidance, including:",
				Items: []Item{
					li("Symptom Analysis", "Describe what you're feeling"),
					li("Possible Conditions", "Based on common patterns"),
					li("Medicine Suggestions", "Over-the-counter options"),
					li("When to See a Doctor", "Important red flags"),
				},
			},
			{
				Kind:  SectionNotice,
				Icon:  "⚠️",
				Title: "Important:",
				Items: bullets("This is not a substitute for professional medical advice. Always consult a healthcare provider for proper diagnosis and treatment."),
			},
		},
		Closing: []Span{
			{Text: "How can I help you today?", Strong: true},
			{Text: " You can start by telling me about your symptoms."},
		},
	}
}
