package api

import (
	"encoding/json"
	"log"
	"net/http"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/config"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/resume"
	"resume-analyzer/internal/skills"
)

type API struct {
	extractor *resume.Extractor
	analyzer  *analysis.Analyzer
}

// NewAPI wires the pipeline from configuration: the text extractor, the skill
// matcher, and the analyzer over a live LLM gateway.
func NewAPI(cfg *config.Config) *API {
	gateway := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	matcher := skills.NewMatcher(cfg.SkillVocabulary)

	if cfg.LLMAPIKey == "" && cfg.LLMProvider != "none" {
		log.Printf("Warning: no API key configured for provider %q", cfg.LLMProvider)
	}

	return &API{
		extractor: resume.NewExtractor(),
		analyzer:  analysis.NewAnalyzer(gateway, matcher),
	}
}

// NewAPIWithAnalyzer injects a prebuilt analyzer, used by tests to swap in a
// deterministic gateway.
func NewAPIWithAnalyzer(analyzer *analysis.Analyzer) *API {
	return &API{
		extractor: resume.NewExtractor(),
		analyzer:  analyzer,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
