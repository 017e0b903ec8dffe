package word

import (
	"context"
	"sync"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByTextFunc func(ctx context.Context, text string) (*domain.Word, error)
	CountFunc     func(ctx context.Context) (int, error)
	ListTextsFunc func(ctx context.Context) ([]string, error)
	CreateFunc    func(ctx context.Context, w *domain.Word) (*domain.Word, error)

	calls struct {
		GetByText []struct {
			Text string
		}
		Count     []struct{}
		ListTexts []struct{}
		Create    []struct {
			W *domain.Word
		}
	}
	lockGetByText sync.RWMutex
	lockCount     sync.RWMutex
	lockListTexts sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *wordRepoMock) GetByText(ctx context.Context, text string) (*domain.Word, error) {
	if mock.GetByTextFunc == nil {
		panic("wordRepoMock.GetByTextFunc: method is nil but wordRepo.GetByText was just called")
	}
	mock.lockGetByText.Lock()
	mock.calls.GetByText = append(mock.calls.GetByText, struct{ Text string }{Text: text})
	mock.lockGetByText.Unlock()
	return mock.GetByTextFunc(ctx, text)
}

func (mock *wordRepoMock) GetByTextCalls() []struct{ Text string } {
	mock.lockGetByText.RLock()
	calls := mock.calls.GetByText
	mock.lockGetByText.RUnlock()
	return calls
}

func (mock *wordRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("wordRepoMock.CountFunc: method is nil but wordRepo.Count was just called")
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *wordRepoMock) CountCalls() []struct{} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListTexts(ctx context.Context) ([]string, error) {
	if mock.ListTextsFunc == nil {
		panic("wordRepoMock.ListTextsFunc: method is nil but wordRepo.ListTexts was just called")
	}
	mock.lockListTexts.Lock()
	mock.calls.ListTexts = append(mock.calls.ListTexts, struct{}{})
	mock.lockListTexts.Unlock()
	return mock.ListTextsFunc(ctx)
}

func (mock *wordRepoMock) ListTextsCalls() []struct{} {
	mock.lockListTexts.RLock()
	calls := mock.calls.ListTexts
	mock.lockListTexts.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ W *domain.Word }{W: w})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct{ W *domain.Word } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
