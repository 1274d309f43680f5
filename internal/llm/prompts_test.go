package llm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/llm"
)

func TestSummaryPrompt(t *testing.T) {
	p := llm.SummaryPrompt("resume body text")

	require.Equal(t, "You are a professional resume summarizer.", p.System)
	require.Contains(t, p.User, "Summarize the following resume text in 3-4 sentences")
	require.Contains(t, p.User, "resume body text")
	require.Equal(t, 0.5, p.Temperature)
	require.Equal(t, 300, p.MaxTokens)
}

func TestSoftSkillsPrompt(t *testing.T) {
	p := llm.SoftSkillsPrompt("resume body text")

	require.Equal(t, "You are an expert at identifying soft skills in resumes.", p.System)
	require.Contains(t, p.User, "resume body text")
	require.Contains(t, p.User, "comma-separated list")
	require.Equal(t, 0.5, p.Temperature)
	require.Equal(t, 150, p.MaxTokens)
}

func TestQuestionsPrompt(t *testing.T) {
	t.Run("With Matched Skills", func(t *testing.T) {
		p := llm.QuestionsPrompt(7, []string{"python", "docker"})

		require.Equal(t, "You are an expert interview question generator.", p.System)
		require.Contains(t, p.User, "Generate 7 direct technical interview questions")
		require.Contains(t, p.User, "python, docker")
		require.Contains(t, p.User, "1. What is polymorphism in object-oriented programming?")
		require.Equal(t, 0.7, p.Temperature)
		require.Equal(t, 800, p.MaxTokens)
	})

	t.Run("Falls Back To Sentinel Skill", func(t *testing.T) {
		p := llm.QuestionsPrompt(3, nil)
		require.Contains(t, p.User, "software development")
	})
}
