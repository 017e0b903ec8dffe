package rest

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/padagalu-backend/internal/prosody"
)

const maxAnalyzeRunes = 2000

// ProsodyHandler exposes the metrical analysis of arbitrary text.
type ProsodyHandler struct {
	an *prosody.Analyzer
}

// NewProsodyHandler creates a ProsodyHandler over an.
func NewProsodyHandler(an *prosody.Analyzer) *ProsodyHandler {
	return &ProsodyHandler{an: an}
}

type rhymeRequest struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type rhymeResponse struct {
	Score  float64         `json:"score"`
	Final1 prosody.Akshara `json:"final1"`
	Final2 prosody.Akshara `json:"final2"`
}

// Analyze handles GET /prosody/analyze?text=.
func (h *ProsodyHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if utf8.RuneCountInString(text) > maxAnalyzeRunes {
		writeError(w, http.StatusBadRequest, "text too long")
		return
	}
	writeJSON(w, http.StatusOK, h.an.Analyze(text))
}

// Rhyme handles POST /prosody/rhyme.
func (h *ProsodyHandler) Rhyme(w http.ResponseWriter, r *http.Request) {
	var req rhymeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, rhymeResponse{
		Score:  h.an.RhymeScore(req.Line1, req.Line2),
		Final1: h.an.FinalAkshara(req.Line1),
		Final2: h.an.FinalAkshara(req.Line2),
	})
}
