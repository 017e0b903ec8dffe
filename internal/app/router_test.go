package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/heartmarshall/padagalu-backend/internal/config"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/observe"
	"github.com/heartmarshall/padagalu-backend/internal/prosody"
	"github.com/heartmarshall/padagalu-backend/internal/service/couplet"
	"github.com/heartmarshall/padagalu-backend/internal/service/word"
	"github.com/heartmarshall/padagalu-backend/internal/transport/middleware"
	"github.com/heartmarshall/padagalu-backend/internal/transport/rest"
)

// memWords is an in-memory word store ordered by insertion.
type memWords struct {
	mu    sync.Mutex
	words []domain.Word
}

func (m *memWords) GetByText(_ context.Context, text string) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.words {
		if w.Text == text {
			return &w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memWords) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.words), nil
}

func (m *memWords) ListTexts(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.words))
	for i, w := range m.words {
		out[i] = w.Text
	}
	return out, nil
}

func (m *memWords) Create(_ context.Context, w *domain.Word) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.words {
		if e.Text == w.Text {
			return nil, domain.ErrAlreadyExists
		}
	}
	m.words = append(m.words, *w)
	return w, nil
}

// memCouplets is an in-memory couplet store.
type memCouplets struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Couplet
}

func (m *memCouplets) GetByID(_ context.Context, id uuid.UUID) (*domain.Couplet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *memCouplets) List(_ context.Context, limit, offset int) ([]domain.Couplet, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.Couplet, 0, len(m.byID))
	for _, c := range m.byID {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset > len(all) {
		offset = len(all)
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (m *memCouplets) Create(_ context.Context, c *domain.Couplet) (*domain.Couplet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[c.ID] = *c
	return c, nil
}

func (m *memCouplets) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Generator: config.GeneratorConfig{
			DefaultTarget: 6, DefaultCount: 3, MaxCount: 10, MaxTarget: 64,
			BeamWidth: 20, MaxWords: 6, SampleSize: 80, LineCandidates: 20,
			MinWordWeight: 1, MaxWordWeight: 6, MaxWordRunes: 12,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,DELETE", AllowedHeaders: "Content-Type"},
		RateLimit: config.RateLimitConfig{Enabled: true, GeneratePerMin: 3, CleanupInterval: time.Hour},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	metrics, err := observe.NewMetrics(noop.NewMeterProvider())
	require.NoError(t, err)

	words := &memWords{}
	couplets := &memCouplets{byID: map[uuid.UUID]domain.Couplet{}}
	wordSvc := word.NewService(logger, words, metrics)
	coupletSvc := couplet.NewService(logger, words, couplets, NewGenerator(cfg.Generator), couplet.Limits{
		DefaultTarget: cfg.Generator.DefaultTarget,
		DefaultCount:  cfg.Generator.DefaultCount,
		MaxCount:      cfg.Generator.MaxCount,
		MaxTarget:     cfg.Generator.MaxTarget,
	}, metrics)

	limiter := middleware.NewRateLimiter(time.Hour)
	t.Cleanup(limiter.Stop)

	h := NewRouter(RouterDeps{
		Health:   rest.NewHealthHandler(okPinger{}, wordSvc, "test"),
		Words:    rest.NewWordHandler(wordSvc, logger),
		Prosody:  rest.NewProsodyHandler(prosody.Default()),
		Couplets: rest.NewCoupletHandler(coupletSvc, logger),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "# metrics\n")
		}),
		Metrics: metrics,
		Limiter: limiter,
		Logger:  logger,
	}, cfg)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_WordsThenGenerate(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, w := range []string{"ಮನೆ", "ಮನಸು", "ಬಾಳು", "ಕಾಡು", "ಬೆಳಕು"} {
		resp := post(t, srv, "/words/lookup", `{"text":"`+w+`","add":true}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := get(t, srv, "/words/count")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count struct{ Count int }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
	assert.Equal(t, 5, count.Count)

	resp = post(t, srv, "/couplets/generate", `{"seed":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var gen struct {
		Couplets []struct {
			Score float64
			Line1 string
			Line2 string
		}
		Target   int
		PoolSize int
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&gen))
	assert.Equal(t, 6, gen.Target)
	assert.Equal(t, 5, gen.PoolSize)
	require.NotEmpty(t, gen.Couplets)

	best := gen.Couplets[0]
	resp = post(t, srv, "/couplets", `{"line1":"`+best.Line1+`","line2":"`+best.Line2+`","target":6}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var saved struct {
		ID    string
		Score float64
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	assert.InDelta(t, best.Score, saved.Score, 1e-9)

	resp = get(t, srv, "/couplets/"+saved.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/couplets/"+saved.ID, nil)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)
}

func TestRouter_GenerateRateLimited(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for i := 0; i < 3; i++ {
		resp := post(t, srv, "/couplets/generate", `{}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
	}
	resp := post(t, srv, "/couplets/generate", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// Other routes are not limited.
	assert.Equal(t, http.StatusOK, get(t, srv, "/words/count").StatusCode)
}

func TestRouter_AmbientHeadersAndRoutes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := get(t, srv, "/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, get(t, srv, "/metrics").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, srv, "/health").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/nope").StatusCode)

	resp = get(t, srv, "/prosody/analyze?text=%E0%B2%AE%E0%B2%A8%E0%B3%86")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var an prosody.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&an))
	assert.Equal(t, 1, an.Weight)
}
