package llm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/llm"
)

func TestParseSummary(t *testing.T) {
	require.Equal(t, "A concise summary.", llm.ParseSummary("  \nA concise summary.\n\n"))
	require.Equal(t, "", llm.ParseSummary("   \n\t  "))
}

func TestParseSoftSkills(t *testing.T) {
	require.Equal(t, "Communication, Leadership, Teamwork",
		llm.ParseSoftSkills("\nCommunication, Leadership, Teamwork  \n"))
}

func TestParseQuestions(t *testing.T) {
	testCases := []struct {
		name           string
		raw            string
		requestedCount int
		want           []string
	}{
		{
			name:           "Numbered Lines Only",
			raw:            "1. What is a goroutine?\n2. Explain interfaces.",
			requestedCount: 5,
			want:           []string{"1. What is a goroutine?", "2. Explain interfaces."},
		},
		{
			name:           "Drops Commentary Without Number Or Question Mark",
			raw:            "Intro text\n1. What is X?\nRandom comment\n2. Explain Y.",
			requestedCount: 5,
			want:           []string{"1. What is X?", "2. Explain Y."},
		},
		{
			name:           "Truncates To Requested Count",
			raw:            "1. A?\n2. B?\n3. C?\n4. D?\n5. E?",
			requestedCount: 3,
			want:           []string{"1. A?", "2. B?", "3. C?"},
		},
		{
			name:           "Keeps Unnumbered Line With Question Mark",
			raw:            "What is dependency injection?\nThanks for asking!",
			requestedCount: 5,
			want:           []string{"What is dependency injection?"},
		},
		{
			name:           "Fewer Qualifying Lines Than Requested",
			raw:            "1. Only one question here.",
			requestedCount: 10,
			want:           []string{"1. Only one question here."},
		},
		{
			name:           "Blank Lines Dropped",
			raw:            "\n\n1. What is X?\n\n\n2. What is Y?\n\n",
			requestedCount: 5,
			want:           []string{"1. What is X?", "2. What is Y?"},
		},
		{
			name:           "Number Without Dot Space Prefix Needs Question Mark",
			raw:            "1) No dot here\n2. Proper numbering.",
			requestedCount: 5,
			want:           []string{"2. Proper numbering."},
		},
		{
			name:           "Empty Response",
			raw:            "",
			requestedCount: 5,
			want:           []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := llm.ParseQuestions(tc.raw, tc.requestedCount)
			require.Equal(t, tc.want, got)
			require.LessOrEqual(t, len(got), tc.requestedCount)
		})
	}
}
