package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
	"github.com/heartmarshall/padagalu-backend/internal/service/couplet"
)

type coupletService interface {
	Generate(ctx context.Context, input couplet.GenerateInput) (*couplet.GenerateResult, error)
	Save(ctx context.Context, input couplet.SaveInput) (*domain.Couplet, error)
	List(ctx context.Context, input couplet.ListInput) ([]domain.Couplet, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Couplet, error)
	Delete(ctx context.Context, input couplet.DeleteInput) error
}

// CoupletHandler serves couplet generation and the saved couplet collection.
type CoupletHandler struct {
	svc coupletService
	log *slog.Logger
}

// NewCoupletHandler creates a CoupletHandler.
func NewCoupletHandler(svc coupletService, logger *slog.Logger) *CoupletHandler {
	return &CoupletHandler{svc: svc, log: logger.With("handler", "couplet")}
}

type generateRequest struct {
	Target int      `json:"target"`
	Count  int      `json:"count"`
	Seed   *int64   `json:"seed"`
	Words  []string `json:"words"`
}

type generateResponse struct {
	Couplets []generator.Couplet `json:"couplets"`
	Target   int                 `json:"target"`
	Count    int                 `json:"count"`
	PoolSize int                 `json:"poolSize"`
}

type saveRequest struct {
	Line1  string `json:"line1"`
	Line2  string `json:"line2"`
	Target int    `json:"target"`
}

type coupletResponse struct {
	ID        string    `json:"id"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2"`
	Score     float64   `json:"score"`
	Target    int       `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

type listResponse struct {
	Items []coupletResponse `json:"items"`
	Total int               `json:"total"`
}

// Generate handles POST /couplets/generate. An empty body uses all defaults.
func (h *CoupletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Generate(r.Context(), couplet.GenerateInput{
		Target: req.Target,
		Count:  req.Count,
		Seed:   req.Seed,
		Words:  req.Words,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Couplets: res.Couplets,
		Target:   res.Target,
		Count:    res.Count,
		PoolSize: res.PoolSize,
	})
}

// Save handles POST /couplets.
func (h *CoupletHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Save(r.Context(), couplet.SaveInput{
		Line1:  req.Line1,
		Line2:  req.Line2,
		Target: req.Target,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCoupletResponse(c))
}

// List handles GET /couplets?limit=&offset=.
func (h *CoupletHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	items, total, err := h.svc.List(r.Context(), couplet.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{Items: make([]coupletResponse, 0, len(items)), Total: total}
	for i := range items {
		resp.Items = append(resp.Items, toCoupletResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /couplets/{id}.
func (h *CoupletHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCoupletResponse(c))
}

// Delete handles DELETE /couplets/{id}.
func (h *CoupletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), couplet.DeleteInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return 0, false
	}
	return n, true
}

func toCoupletResponse(c *domain.Couplet) coupletResponse {
	return coupletResponse{
		ID:        c.ID.String(),
		Line1:     c.Line1,
		Line2:     c.Line2,
		Score:     c.Score,
		Target:    c.Target,
		CreatedAt: c.CreatedAt,
	}
}
