package analysis

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/skills"
)

// ErrEmptyText means the document was readable but produced no text. It is a
// usage condition, raised before any LLM round trip so no external calls are
// wasted on an empty resume.
var ErrEmptyText = errors.New("no text found in resume")

// Section names used for per-branch failure reporting.
const (
	SectionSummary    = "summary"
	SectionSoftSkills = "soft_skills"
	SectionQuestions  = "questions"
)

// Gateway is the capability boundary to the external LLM service. The
// pipeline only ever needs one call shape, which keeps it testable with a
// deterministic stand-in.
type Gateway interface {
	Complete(ctx context.Context, p llm.Prompt) (string, error)
}

// Failure records one failed branch of the pipeline.
type Failure struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// Report is the final bundle handed to the presentation layer.
type Report struct {
	ID            string              `json:"analysis_id"`
	MatchedSkills []string            `json:"matched_skills"`
	SkillCounts   []skills.SkillCount `json:"skill_counts"`
	Summary       string              `json:"summary"`
	SoftSkills    string              `json:"soft_skills"`
	Questions     []string            `json:"questions"`
	Failures      []Failure           `json:"failures,omitempty"`
}

type Analyzer struct {
	gateway Gateway
	matcher *skills.Matcher
}

func NewAnalyzer(gateway Gateway, matcher *skills.Matcher) *Analyzer {
	return &Analyzer{
		gateway: gateway,
		matcher: matcher,
	}
}

// Analyze runs the full pipeline over already-extracted resume text. Skills
// are matched once up front; the three LLM branches share that input and
// nothing else, so they run concurrently. A failure on one branch is recorded
// and does not stop the others; the bundle always comes back assembled, with
// Failures listing whichever sections could not be produced.
func (a *Analyzer) Analyze(ctx context.Context, text string, numQuestions int) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	matched := a.matcher.Match(text)
	counts := a.matcher.Counts(text)
	log.Printf("Matched %d of %d vocabulary skills", len(matched), len(a.matcher.Vocabulary()))

	report := &Report{
		ID:            uuid.NewString(),
		MatchedSkills: matched,
		SkillCounts:   counts,
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	fail := func(section string, err error) {
		mu.Lock()
		defer mu.Unlock()
		log.Printf("Branch %s failed: %v", section, err)
		report.Failures = append(report.Failures, Failure{Section: section, Message: err.Error()})
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		raw, err := a.gateway.Complete(ctx, llm.SummaryPrompt(text))
		if err != nil {
			fail(SectionSummary, err)
			return
		}
		report.Summary = llm.ParseSummary(raw)
	}()

	go func() {
		defer wg.Done()
		raw, err := a.gateway.Complete(ctx, llm.SoftSkillsPrompt(text))
		if err != nil {
			fail(SectionSoftSkills, err)
			return
		}
		report.SoftSkills = llm.ParseSoftSkills(raw)
	}()

	go func() {
		defer wg.Done()
		raw, err := a.gateway.Complete(ctx, llm.QuestionsPrompt(numQuestions, matched))
		if err != nil {
			fail(SectionQuestions, err)
			return
		}
		report.Questions = llm.ParseQuestions(raw, numQuestions)
	}()

	wg.Wait()

	// Deterministic failure order for the fixed bundle shape.
	sortFailures(report.Failures)

	return report, nil
}

// AllBranchesFailed reports whether no section of the bundle was produced.
func (r *Report) AllBranchesFailed() bool {
	return len(r.Failures) == 3
}

var sectionOrder = map[string]int{
	SectionSummary:    0,
	SectionSoftSkills: 1,
	SectionQuestions:  2,
}

func sortFailures(failures []Failure) {
	sort.Slice(failures, func(i, j int) bool {
		return sectionOrder[failures[i].Section] < sectionOrder[failures[j].Section]
	})
}
