package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const questionsFilename = "interview_questions.txt"

// DownloadQuestionsRequest carries the questions to export. Nothing is stored
// server-side, so the client sends back the list it received from analyze.
type DownloadQuestionsRequest struct {
	Questions []string `json:"questions"`
}

// DownloadQuestionsHandler exports questions as a plain-text attachment
// @Summary Download interview questions
// @Description Export a list of interview questions as a downloadable text file
// @Tags resume
// @Accept json
// @Produce plain
// @Param request body DownloadQuestionsRequest true "Questions to export"
// @Success 200 {string} string "newline-joined questions"
// @Failure 400 {object} map[string]string
// @Router /questions/download [post]
func (a *API) DownloadQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req DownloadQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "no questions to download")
		return
	}

	body := strings.Join(req.Questions, "\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", questionsFilename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
