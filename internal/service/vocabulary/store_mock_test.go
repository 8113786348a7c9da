package vocabulary

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

var _ vocabularyStore = &vocabularyStoreMock{}

type vocabularyStoreMock struct {
	GetByIDFunc func(ctx context.Context, source string, target string, id string) (*domain.Vocabulary, error)
	SaveFunc    func(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			Source string
			Target string
			ID     string
		}
		Save []struct {
			Ctx context.Context
			V   *domain.Vocabulary
		}
	}
	lockGetByID sync.RWMutex
	lockSave    sync.RWMutex
}

func (mock *vocabularyStoreMock) GetByID(ctx context.Context, source string, target string, id string) (*domain.Vocabulary, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyStoreMock.GetByIDFunc: method is nil but vocabularyStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source string
		Target string
		ID     string
	}{Ctx: ctx, Source: source, Target: target, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, source, target, id)
}

func (mock *vocabularyStoreMock) GetByIDCalls() []struct {
	Ctx    context.Context
	Source string
	Target string
	ID     string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabularyStoreMock) Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	if mock.SaveFunc == nil {
		panic("vocabularyStoreMock.SaveFunc: method is nil but vocabularyStore.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Vocabulary
	}{Ctx: ctx, V: v}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, v)
}

func (mock *vocabularyStoreMock) SaveCalls() []struct {
	Ctx context.Context
	V   *domain.Vocabulary
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
