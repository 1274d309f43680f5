package api

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/resume"
)

const (
	defaultNumQuestions = 5
	maxNumQuestions     = 10
	maxUploadBytes      = 10 << 20 // 10MB
)

// AnalyzeResponse is the bundle returned for one uploaded resume.
type AnalyzeResponse struct {
	Filename string `json:"filename"`
	*analysis.Report
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// AnalyzeHandler runs the full pipeline over one uploaded resume
// @Summary Analyze a resume
// @Description Upload a resume (PDF/DOCX/TXT), match it against the skill vocabulary, and generate a summary, soft skills, and interview questions
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Param num_questions formData int false "Number of interview questions (1-10)" default(5)
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /resume/analyze [post]
func (a *API) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	startTime := time.Now()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	numQuestions := defaultNumQuestions
	if raw := r.FormValue("num_questions"); raw != "" {
		numQuestions, err = strconv.Atoi(raw)
		if err != nil || numQuestions < 1 || numQuestions > maxNumQuestions {
			writeError(w, http.StatusBadRequest, "num_questions must be an integer between 1 and 10")
			return
		}
	}

	text, err := a.extractor.Extract(header.Filename, file)
	if err != nil {
		var extErr *resume.ExtractionError
		if errors.As(err, &extErr) {
			writeError(w, http.StatusBadRequest, extErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to extract resume text")
		return
	}

	log.Printf("Resume text extracted: %s (%d bytes, ext %s)", header.Filename, len(text), filepath.Ext(header.Filename))

	report, err := a.analyzer.Analyze(r.Context(), text, numQuestions)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyText) {
			writeError(w, http.StatusUnprocessableEntity, "no text found in the uploaded resume")
			return
		}
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	if report.AllBranchesFailed() {
		writeError(w, http.StatusBadGateway, "LLM service unavailable")
		return
	}

	resp := AnalyzeResponse{
		Filename:         header.Filename,
		Report:           report,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}

	log.Printf("Analysis %s complete in %dms (%d skills, %d questions, %d failures)",
		report.ID, resp.ProcessingTimeMs, len(report.MatchedSkills), len(report.Questions), len(report.Failures))

	writeJSON(w, http.StatusOK, resp)
}
