package skills_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/skills"
)

func TestMatcher_Match(t *testing.T) {
	testCases := []struct {
		name       string
		vocabulary []string
		text       string
		want       []string
	}{
		{
			name:       "Whole Word Match",
			vocabulary: []string{"python"},
			text:       "built tooling in python for data teams",
			want:       []string{"python"},
		},
		{
			name:       "No Match Inside Longer Word",
			vocabulary: []string{"python"},
			text:       "worked with pythonx internals",
			want:       nil,
		},
		{
			name:       "Case Insensitive",
			vocabulary: []string{"python"},
			text:       "PYTHON",
			want:       []string{"python"},
		},
		{
			name:       "Vocabulary Order Not Occurrence Order",
			vocabulary: []string{"java", "python"},
			text:       "python first, java second",
			want:       []string{"java", "python"},
		},
		{
			name:       "Multi-word Entry Matches As Literal Phrase",
			vocabulary: []string{"machine learning"},
			text:       "applied machine learning at scale",
			want:       []string{"machine learning"},
		},
		{
			name:       "Multi-word Entry Does Not Match Word By Word",
			vocabulary: []string{"machine learning"},
			text:       "machine operator with a love of learning",
			want:       nil,
		},
		{
			name:       "Resume Scenario",
			vocabulary: []string{"machine learning", "sql", "java", "python", "docker"},
			text:       "I built a Python and SQL based ML pipeline using Docker.",
			want:       []string{"sql", "python", "docker"},
		},
		{
			name:       "Empty Text",
			vocabulary: []string{"python", "sql"},
			text:       "",
			want:       nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := skills.NewMatcher(tc.vocabulary)
			got := m.Match(tc.text)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMatcher_Counts(t *testing.T) {
	m := skills.NewMatcher([]string{"python", "docker", "aws"})

	got := m.Counts("Python services in docker, more python, never the cloud")

	require.Equal(t, []skills.SkillCount{
		{Skill: "python", Count: 2},
		{Skill: "docker", Count: 1},
	}, got)
}

func TestMatcher_DefaultVocabulary(t *testing.T) {
	m := skills.NewMatcher(nil)
	require.Equal(t, skills.DefaultVocabulary, m.Vocabulary())

	// "java" must not fire inside "javascript"
	got := m.Match("senior javascript engineer")
	require.Equal(t, []string{"javascript"}, got)
}
