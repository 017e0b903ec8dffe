package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/service/word"
)

type wordService interface {
	Lookup(ctx context.Context, input word.LookupInput) (*domain.LookupResult, error)
	Add(ctx context.Context, input word.AddInput) (*domain.Word, error)
	Count(ctx context.Context) (int, error)
}

// WordHandler serves the word store endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type lookupRequest struct {
	Text string `json:"text"`
	Add  bool   `json:"add"`
}

type addWordRequest struct {
	Text string `json:"text"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type lookupResponse struct {
	Status      string        `json:"status"`
	Word        *wordResponse `json:"word,omitempty"`
	Suggestions []string      `json:"suggestions,omitempty"`
	Total       int           `json:"total"`
}

type countResponse struct {
	Count int `json:"count"`
}

// Lookup handles POST /words/lookup.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Lookup(r.Context(), word.LookupInput{Text: req.Text, Add: req.Add})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := lookupResponse{
		Status:      res.Status.String(),
		Suggestions: res.Suggestions,
		Total:       res.Total,
	}
	if res.Word != nil {
		wr := toWordResponse(res.Word)
		resp.Word = &wr
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /words.
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Add(r.Context(), word.AddInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(created))
}

// Count handles GET /words/count.
func (h *WordHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{ID: w.ID.String(), Text: w.Text, CreatedAt: w.CreatedAt}
}
