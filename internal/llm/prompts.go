package llm

import (
	"fmt"
	"strings"
)

// System role instructions, one per request kind.
const (
	summarySystemPrompt    = "You are a professional resume summarizer."
	softSkillsSystemPrompt = "You are an expert at identifying soft skills in resumes."
	questionsSystemPrompt  = "You are an expert interview question generator."
)

// Prompt is one fully specified chat-completion request: both messages plus
// the generation parameters that go with them. Prompts are built up front and
// carry no hidden state.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// SummaryPrompt asks for a 3-4 sentence summary of the resume text.
func SummaryPrompt(resumeText string) Prompt {
	user := "Summarize the following resume text in 3-4 sentences, highlighting technical skills, experience, and role preferences.\n\n" +
		fmt.Sprintf("Resume Text:\n%s\n", resumeText)

	return Prompt{
		System:      summarySystemPrompt,
		User:        user,
		Temperature: 0.5,
		MaxTokens:   300,
	}
}

// SoftSkillsPrompt asks for a comma-separated soft-skill list.
func SoftSkillsPrompt(resumeText string) Prompt {
	user := "Extract and list the top soft skills mentioned or implied in the following resume text:\n\n" +
		resumeText + "\n" +
		"\nList them as a comma-separated list."

	return Prompt{
		System:      softSkillsSystemPrompt,
		User:        user,
		Temperature: 0.5,
		MaxTokens:   150,
	}
}

// QuestionsPrompt asks for numQuestions numbered interview questions covering
// the given skills. When no skills were matched the prompt falls back to the
// generic "software development" so the request still produces questions.
func QuestionsPrompt(numQuestions int, matchedSkills []string) Prompt {
	skills := matchedSkills
	if len(skills) == 0 {
		skills = []string{"software development"}
	}

	user := fmt.Sprintf("Generate %d direct technical interview questions for a candidate skilled in: %s.\n",
		numQuestions, strings.Join(skills, ", ")) +
		"Only list the questions, numbered, with no explanations, no introductions, and no commentary.\n" +
		"Example:\n" +
		"1. What is polymorphism in object-oriented programming?\n" +
		"2. How does a REST API work?\n\n" +
		"Questions:\n"

	return Prompt{
		System:      questionsSystemPrompt,
		User:        user,
		Temperature: 0.7,
		MaxTokens:   800,
	}
}
