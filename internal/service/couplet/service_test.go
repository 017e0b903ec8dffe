package couplet

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
)

var testPool = []string{"ಮನೆ", "ಮನಸು", "ಬಾಳು", "ಕಾಡು", "ಬೆಳಕು"}

var testLimits = Limits{DefaultTarget: 6, DefaultCount: 3, MaxCount: 5, MaxTarget: 32}

type recorderSpy struct {
	mu       sync.Mutex
	produced []int
	errs     []error
	saved    int
}

func (r *recorderSpy) RecordGeneration(_ context.Context, _ time.Duration, produced int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.produced = append(r.produced, produced)
	r.errs = append(r.errs, err)
}

func (r *recorderSpy) RecordCoupletSaved(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved++
}

func newTestService(t *testing.T, words *wordSourceMock, repo *coupletRepoMock, rec recorder) *Service {
	t.Helper()
	return NewService(slog.Default(), words, repo, generator.New(), testLimits, rec)
}

func stored(texts []string) *wordSourceMock {
	return &wordSourceMock{
		ListTextsFunc: func(context.Context) ([]string, error) { return texts, nil },
	}
}

func seed(v int64) *int64 { return &v }

// ---------------------------------------------------------------------------
// Generate
// ---------------------------------------------------------------------------

func TestGenerate_FromStoredPool(t *testing.T) {
	t.Parallel()

	words := stored(testPool)
	spy := &recorderSpy{}
	svc := newTestService(t, words, &coupletRepoMock{}, spy)

	res, err := svc.Generate(context.Background(), GenerateInput{Seed: seed(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Target != 6 {
		t.Errorf("target: got %d, want default 6", res.Target)
	}
	if res.Count != 3 {
		t.Errorf("count: got %d, want default 3", res.Count)
	}
	if res.PoolSize != len(testPool) {
		t.Errorf("pool size: got %d, want %d", res.PoolSize, len(testPool))
	}
	if len(res.Couplets) == 0 || len(res.Couplets) > 3 {
		t.Fatalf("couplets: got %d, want 1..3", len(res.Couplets))
	}
	for i := 1; i < len(res.Couplets); i++ {
		if res.Couplets[i].Score > res.Couplets[i-1].Score {
			t.Errorf("couplets not sorted by score at %d", i)
		}
	}
	if len(words.ListTextsCalls()) != 1 {
		t.Errorf("ListTexts calls: got %d, want 1", len(words.ListTextsCalls()))
	}
	if len(spy.produced) != 1 || spy.produced[0] != len(res.Couplets) || spy.errs[0] != nil {
		t.Errorf("recorded generation: produced=%v errs=%v", spy.produced, spy.errs)
	}
}

func TestGenerate_MatchesGeneratorUnderSeed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, stored(testPool), &coupletRepoMock{}, nil)
	res, err := svc.Generate(context.Background(), GenerateInput{Target: 6, Count: 5, Seed: seed(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := generator.New().Generate(generator.WordsFromStrings(testPool), 6, 5, seed(1))
	if len(res.Couplets) != len(want) {
		t.Fatalf("couplets: got %d, want %d", len(res.Couplets), len(want))
	}
	for i := range want {
		if res.Couplets[i] != want[i] {
			t.Errorf("couplet %d: got %+v, want %+v", i, res.Couplets[i], want[i])
		}
	}
}

func TestGenerate_ExplicitWordsSkipStore(t *testing.T) {
	t.Parallel()

	words := &wordSourceMock{}
	svc := newTestService(t, words, &coupletRepoMock{}, nil)

	res, err := svc.Generate(context.Background(), GenerateInput{
		Words: []string{" ಮನೆ", "", "ಬಾಳು "},
		Seed:  seed(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PoolSize != 2 {
		t.Errorf("pool size: got %d, want 2", res.PoolSize)
	}
	if len(words.ListTextsCalls()) != 0 {
		t.Error("store should not be read when words are given")
	}
}

func TestGenerate_CountCapped(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, stored(testPool), &coupletRepoMock{}, nil)
	res, err := svc.Generate(context.Background(), GenerateInput{Count: 100, Seed: seed(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != testLimits.MaxCount {
		t.Errorf("count: got %d, want %d", res.Count, testLimits.MaxCount)
	}
	if len(res.Couplets) > testLimits.MaxCount {
		t.Errorf("couplets: got %d, want <= %d", len(res.Couplets), testLimits.MaxCount)
	}
}

func TestGenerate_EmptyStore(t *testing.T) {
	t.Parallel()

	spy := &recorderSpy{}
	svc := newTestService(t, stored(nil), &coupletRepoMock{}, spy)

	res, err := svc.Generate(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Couplets) != 0 {
		t.Errorf("couplets: got %d, want 0", len(res.Couplets))
	}
	if len(spy.produced) != 1 || spy.produced[0] != 0 {
		t.Errorf("recorded produced: %v", spy.produced)
	}
}

func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input GenerateInput
		field string
	}{
		{"negative target", GenerateInput{Target: -1}, "target"},
		{"target over max", GenerateInput{Target: 33}, "target"},
		{"negative count", GenerateInput{Count: -2}, "count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, &wordSourceMock{}, &coupletRepoMock{}, nil)

			_, err := svc.Generate(context.Background(), tt.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Errors[0].Field != tt.field {
				t.Errorf("field: got %q, want %q", ve.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestGenerate_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	words := &wordSourceMock{
		ListTextsFunc: func(context.Context) ([]string, error) { return nil, boom },
	}
	spy := &recorderSpy{}
	svc := newTestService(t, words, &coupletRepoMock{}, spy)

	_, err := svc.Generate(context.Background(), GenerateInput{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if len(spy.errs) != 1 || !errors.Is(spy.errs[0], boom) {
		t.Errorf("recorded errors: %v", spy.errs)
	}
}

// ---------------------------------------------------------------------------
// Save / List / Delete
// ---------------------------------------------------------------------------

func TestSave_RecomputesScore(t *testing.T) {
	t.Parallel()

	repo := &coupletRepoMock{
		CreateFunc: func(_ context.Context, c *domain.Couplet) (*domain.Couplet, error) { return c, nil },
	}
	spy := &recorderSpy{}
	svc := newTestService(t, &wordSourceMock{}, repo, spy)

	// Both lines weigh 4. Finals ಕಾಡು and ಬಾಳು differ but share the long class.
	c, err := svc.Save(context.Background(), SaveInput{Line1: " ಬಾಳು ಕಾಡು", Line2: "ಕಾಡು ಬಾಳು", Target: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Line1 != "ಬಾಳು ಕಾಡು" {
		t.Errorf("line1 not trimmed: %q", c.Line1)
	}
	want := 0.7*1.0 + 0.3*0.5
	if math.Abs(c.Score-want) > 1e-9 {
		t.Errorf("score: got %v, want %v", c.Score, want)
	}
	if c.Target != 4 {
		t.Errorf("target: got %d", c.Target)
	}
	if spy.saved != 1 {
		t.Errorf("saved recorded: %d", spy.saved)
	}
}

func TestSave_DefaultTarget(t *testing.T) {
	t.Parallel()

	repo := &coupletRepoMock{
		CreateFunc: func(_ context.Context, c *domain.Couplet) (*domain.Couplet, error) { return c, nil },
	}
	svc := newTestService(t, &wordSourceMock{}, repo, nil)

	c, err := svc.Save(context.Background(), SaveInput{Line1: "ಮನೆ", Line2: "ಮನೆ"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Target != testLimits.DefaultTarget {
		t.Errorf("target: got %d, want %d", c.Target, testLimits.DefaultTarget)
	}
}

func TestSave_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &wordSourceMock{}, &coupletRepoMock{}, nil)
	_, err := svc.Save(context.Background(), SaveInput{Line1: " ", Line2: ""})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("field errors: got %d, want 2", len(ve.Errors))
	}
}

func TestList_DefaultLimit(t *testing.T) {
	t.Parallel()

	repo := &coupletRepoMock{
		ListFunc: func(context.Context, int, int) ([]domain.Couplet, int, error) {
			return []domain.Couplet{{ID: uuid.New()}}, 9, nil
		},
	}
	svc := newTestService(t, &wordSourceMock{}, repo, nil)

	items, total, err := svc.List(context.Background(), ListInput{Offset: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || total != 9 {
		t.Errorf("got %d items total %d", len(items), total)
	}
	calls := repo.ListCalls()
	if len(calls) != 1 || calls[0].Limit != DefaultLimit || calls[0].Offset != 4 {
		t.Errorf("List calls: %+v", calls)
	}
}

func TestList_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &wordSourceMock{}, &coupletRepoMock{}, nil)
	_, _, err := svc.List(context.Background(), ListInput{Limit: MaxLimit + 1, Offset: -1})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("field errors: got %d, want 2", len(ve.Errors))
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name    string
		input   DeleteInput
		repoErr error
		wantErr error
	}{
		{"success", DeleteInput{ID: id}, nil, nil},
		{"not found", DeleteInput{ID: id}, domain.ErrNotFound, domain.ErrNotFound},
		{"nil id", DeleteInput{}, nil, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &coupletRepoMock{
				DeleteFunc: func(context.Context, uuid.UUID) error { return tt.repoErr },
			}
			svc := newTestService(t, &wordSourceMock{}, repo, nil)

			err := svc.Delete(context.Background(), tt.input)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &coupletRepoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (*domain.Couplet, error) { return nil, domain.ErrNotFound },
	}
	svc := newTestService(t, &wordSourceMock{}, repo, nil)

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
