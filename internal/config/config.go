package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LLM Configuration
	LLMProvider string // "groq", "openai", or "none"
	LLMModel    string // "llama3-70b-8192", "gpt-4o-mini", ...
	LLMAPIKey   string // Groq or OpenAI API key
	LLMTimeout  time.Duration

	// Skill vocabulary, in match-priority order. Empty means the built-in list.
	SkillVocabulary []string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: could not load .env file, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "groq" // default
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "llama3-70b-8192" // default model on Groq
	}

	// Get API key based on provider
	llmAPIKey := ""
	if llmProvider == "groq" {
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	} else if llmProvider == "openai" {
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	timeout := 120 * time.Second
	if raw := os.Getenv("LLM_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			log.Printf("Warning: invalid LLM_TIMEOUT_SECONDS %q, keeping %v", raw, timeout)
		} else {
			timeout = time.Duration(secs) * time.Second
		}
	}

	var vocabulary []string
	if raw := os.Getenv("SKILL_VOCABULARY"); raw != "" {
		for _, entry := range strings.Split(raw, ",") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				vocabulary = append(vocabulary, entry)
			}
		}
	}

	return &Config{
		Port:            port,
		LLMProvider:     llmProvider,
		LLMModel:        llmModel,
		LLMAPIKey:       llmAPIKey,
		LLMTimeout:      timeout,
		SkillVocabulary: vocabulary,
	}
}
