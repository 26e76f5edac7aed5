package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestionsSingleCategory(t *testing.T) {
	got := Suggestions("how do I apply for leave")
	require.Equal(t, []string{
		"What's my leave balance?",
		"How many vacation days do I have left?",
		"Can I see my leave history?",
	}, got)
}

func TestSuggestionsAggregateAndTruncate(t *testing.T) {
	got := Suggestions("leave and attendance")
	require.Len(t, got, 3)
	// leave suggestions fill the list before attendance ones are reached
	require.Equal(t, "What's my leave balance?", got[0])
	require.Equal(t, "Can I see my leave history?", got[2])
}

func TestSuggestionsDefault(t *testing.T) {
	got := Suggestions("completely unrelated message")
	require.Equal(t, defaultSuggestions[:3], got)
}
