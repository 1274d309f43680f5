package skills

import (
	"regexp"
	"strings"
)

// DefaultVocabulary is the built-in set of recognized technical skills.
// Matching walks this slice in order, so results always come back in
// vocabulary order regardless of where the skills appear in the text.
var DefaultVocabulary = []string{
	"machine learning", "sql", "java", "python", "data structures",
	"c++", "javascript", "deep learning", "nlp", "react",
	"aws", "docker", "kubernetes", "git", "html", "css",
}

// SkillCount pairs a matched skill with its number of occurrences.
// The counts feed the word-cloud style rendering on the client.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type Matcher struct {
	vocabulary []string
	patterns   []*regexp.Regexp
}

// NewMatcher compiles a case-insensitive whole-word pattern per vocabulary
// entry. Multi-word entries match as the literal phrase, bounded at each end.
// A nil or empty vocabulary falls back to DefaultVocabulary.
func NewMatcher(vocabulary []string) *Matcher {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}

	patterns := make([]*regexp.Regexp, len(vocabulary))
	for i, skill := range vocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}

	return &Matcher{
		vocabulary: vocabulary,
		patterns:   patterns,
	}
}

func (m *Matcher) Vocabulary() []string {
	return m.vocabulary
}

// Match returns the vocabulary entries found in text as whole words,
// preserving vocabulary order. No scoring, no fuzzy matching.
func (m *Matcher) Match(text string) []string {
	textLower := strings.ToLower(text)

	var matched []string
	for i, skill := range m.vocabulary {
		if m.patterns[i].MatchString(textLower) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// Counts returns occurrence counts for every matched vocabulary entry,
// again in vocabulary order. Skills absent from the text are omitted.
func (m *Matcher) Counts(text string) []SkillCount {
	textLower := strings.ToLower(text)

	var counts []SkillCount
	for i, skill := range m.vocabulary {
		n := len(m.patterns[i].FindAllStringIndex(textLower, -1))
		if n > 0 {
			counts = append(counts, SkillCount{Skill: skill, Count: n})
		}
	}
	return counts
}
