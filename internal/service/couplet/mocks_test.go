package couplet

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

var _ wordSource = &wordSourceMock{}

type wordSourceMock struct {
	ListTextsFunc func(ctx context.Context) ([]string, error)

	calls struct {
		ListTexts []struct{}
	}
	lockListTexts sync.RWMutex
}

func (mock *wordSourceMock) ListTexts(ctx context.Context) ([]string, error) {
	if mock.ListTextsFunc == nil {
		panic("wordSourceMock.ListTextsFunc: method is nil but wordSource.ListTexts was just called")
	}
	mock.lockListTexts.Lock()
	mock.calls.ListTexts = append(mock.calls.ListTexts, struct{}{})
	mock.lockListTexts.Unlock()
	return mock.ListTextsFunc(ctx)
}

func (mock *wordSourceMock) ListTextsCalls() []struct{} {
	mock.lockListTexts.RLock()
	calls := mock.calls.ListTexts
	mock.lockListTexts.RUnlock()
	return calls
}

var _ coupletRepo = &coupletRepoMock{}

type coupletRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Couplet, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]domain.Couplet, int, error)
	CreateFunc  func(ctx context.Context, c *domain.Couplet) (*domain.Couplet, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Limit  int
			Offset int
		}
		Create []struct {
			C *domain.Couplet
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *coupletRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couplet, error) {
	if mock.GetByIDFunc == nil {
		panic("coupletRepoMock.GetByIDFunc: method is nil but coupletRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *coupletRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *coupletRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Couplet, int, error) {
	if mock.ListFunc == nil {
		panic("coupletRepoMock.ListFunc: method is nil but coupletRepo.List was just called")
	}
	callInfo := struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *coupletRepoMock) ListCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *coupletRepoMock) Create(ctx context.Context, c *domain.Couplet) (*domain.Couplet, error) {
	if mock.CreateFunc == nil {
		panic("coupletRepoMock.CreateFunc: method is nil but coupletRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ C *domain.Couplet }{C: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *coupletRepoMock) CreateCalls() []struct{ C *domain.Couplet } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *coupletRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("coupletRepoMock.DeleteFunc: method is nil but coupletRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *coupletRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
