package llm

import (
	"regexp"
	"strings"
)

// Completions are untrusted free-form text; the parsers below impose only as
// much structure as the presentation layer needs.

var numberedLinePattern = regexp.MustCompile(`^\d+\.\s`)

// ParseSummary trims the completion and returns it as display text.
func ParseSummary(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseSoftSkills trims the completion. The result stays a single string;
// it is expected to be comma-separated but is never split downstream.
func ParseSoftSkills(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseQuestions splits the completion into lines and keeps those that carry
// a numbered-list prefix or contain a question mark, in emission order. Both
// predicates run against the raw line; retained lines are trimmed afterwards.
// Anything else (commentary, blank lines) is silently dropped. The result is
// truncated to requestedCount; if the model produced fewer qualifying lines,
// fewer come back.
func ParseQuestions(raw string, requestedCount int) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	questions := make([]string, 0, len(lines))
	for _, line := range lines {
		if numberedLinePattern.MatchString(line) || strings.Contains(line, "?") {
			questions = append(questions, strings.TrimSpace(line))
		}
	}

	if len(questions) > requestedCount {
		questions = questions[:requestedCount]
	}
	return questions
}
