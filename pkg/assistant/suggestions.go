package assistant

import "github.com/hr360/assistant/pkg/nlp"

const maxSuggestions = 3

// suggestionRule maps topic keywords to follow-up questions. Unlike the
// responder taxonomy, every matching rule contributes its suggestions; the
// aggregate is truncated to maxSuggestions.
type suggestionRule struct {
	keywords    []string
	suggestions []string
}

var suggestionRules = []suggestionRule{
	{
		keywords:    []string{"leave", "vacation"},
		suggestions: []string{"What's my leave balance?", "How many vacation days do I have left?", "Can I see my leave history?"},
	},
	{
		keywords:    []string{"attendance", "clock"},
		suggestions: []string{"Show me my attendance report", "How many hours did I work this month?", "Am I eligible for overtime?"},
	},
	{
		keywords:    []string{"payroll", "salary", "pay"},
		suggestions: []string{"What's my salary breakdown?", "When is payday?", "How do I download my payslip?"},
	},
	{
		keywords:    []string{"performance", "review"},
		suggestions: []string{"What's my current performance score?", "When is my next review?", "How can I improve my performance?"},
	},
	{
		keywords:    []string{"benefit", "insurance"},
		suggestions: []string{"What health insurance do I have?", "Tell me about retirement benefits", "How does the 401k work?"},
	},
	{
		keywords:    []string{"career", "training"},
		suggestions: []string{"What training programs are available?", "How can I get promoted?", "Are there mentorship opportunities?"},
	},
	{
		keywords:    []string{"policy", "handbook"},
		suggestions: []string{"What's the remote work policy?", "Tell me about the code of conduct", "What are the safety procedures?"},
	},
}

var defaultSuggestions = []string{
	"How do I apply for leave?",
	"Check my attendance",
	"Show me my payslip",
	"Tell me about benefits",
}

// Suggestions proposes up to three follow-up questions for a user message.
func Suggestions(message string) []string {
	var out []string
	for _, rule := range suggestionRules {
		if nlp.ContainsAny(message, rule.keywords...) {
			out = append(out, rule.suggestions...)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultSuggestions...)
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
