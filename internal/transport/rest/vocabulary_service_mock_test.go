package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	CreateFunc func(ctx context.Context, snap domain.VocabularySnapshot) (*domain.Vocabulary, error)
	GetFunc    func(ctx context.Context, source string, target string, id string) (*domain.Vocabulary, error)
	UpdateFunc func(ctx context.Context, source string, target string, id string, patch vocabulary.Patch) (*domain.Vocabulary, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Snap domain.VocabularySnapshot
		}
		Get []struct {
			Ctx    context.Context
			Source string
			Target string
			ID     string
		}
		Update []struct {
			Ctx    context.Context
			Source string
			Target string
			ID     string
			Patch  vocabulary.Patch
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *vocabularyServiceMock) Create(ctx context.Context, snap domain.VocabularySnapshot) (*domain.Vocabulary, error) {
	if mock.CreateFunc == nil {
		panic("vocabularyServiceMock.CreateFunc: method is nil but vocabularyService.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Snap domain.VocabularySnapshot
	}{Ctx: ctx, Snap: snap}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, snap)
}

func (mock *vocabularyServiceMock) CreateCalls() []struct {
	Ctx  context.Context
	Snap domain.VocabularySnapshot
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Get(ctx context.Context, source string, target string, id string) (*domain.Vocabulary, error) {
	if mock.GetFunc == nil {
		panic("vocabularyServiceMock.GetFunc: method is nil but vocabularyService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source string
		Target string
		ID     string
	}{Ctx: ctx, Source: source, Target: target, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, source, target, id)
}

func (mock *vocabularyServiceMock) GetCalls() []struct {
	Ctx    context.Context
	Source string
	Target string
	ID     string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Update(ctx context.Context, source string, target string, id string, patch vocabulary.Patch) (*domain.Vocabulary, error) {
	if mock.UpdateFunc == nil {
		panic("vocabularyServiceMock.UpdateFunc: method is nil but vocabularyService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source string
		Target string
		ID     string
		Patch  vocabulary.Patch
	}{Ctx: ctx, Source: source, Target: target, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, source, target, id, patch)
}

func (mock *vocabularyServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	Source string
	Target string
	ID     string
	Patch  vocabulary.Patch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
