package service_test

import (
	"context"
	"fmt"
	"sync"

	"procook-backend/internal/mocks"
	"procook-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// mockStore bundles a MockStore with its repositories. Transaction runs the
// callback against the same mocks.
type mockStore struct {
	store    *mocks.MockStore
	users    *mocks.MockUserRepositoryInterface
	recipes  *mocks.MockRecipeRepositoryInterface
	comments *mocks.MockCommentRepositoryInterface
	ratings  *mocks.MockRatingRepositoryInterface
	saved    *mocks.MockSavedRecipeRepositoryInterface
}

func newMockStore(ctrl *gomock.Controller) *mockStore {
	m := &mockStore{
		store:    mocks.NewMockStore(ctrl),
		users:    mocks.NewMockUserRepositoryInterface(ctrl),
		recipes:  mocks.NewMockRecipeRepositoryInterface(ctrl),
		comments: mocks.NewMockCommentRepositoryInterface(ctrl),
		ratings:  mocks.NewMockRatingRepositoryInterface(ctrl),
		saved:    mocks.NewMockSavedRecipeRepositoryInterface(ctrl),
	}
	m.store.EXPECT().Users().Return(m.users).AnyTimes()
	m.store.EXPECT().Recipes().Return(m.recipes).AnyTimes()
	m.store.EXPECT().Comments().Return(m.comments).AnyTimes()
	m.store.EXPECT().Ratings().Return(m.ratings).AnyTimes()
	m.store.EXPECT().SavedRecipes().Return(m.saved).AnyTimes()
	return m
}

// expectTransaction lets one Transaction call run its callback
func (m *mockStore) expectTransaction() *gomock.Call {
	return m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx repository.Store) error) error {
			return fn(m.store)
		})
}

// fakeAssets is an in-memory asset store
type fakeAssets struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
	saveErr error
	next    int
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{files: map[string][]byte{}}
}

func (f *fakeAssets) Save(_ context.Context, data []byte, ext string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.next++
	p := fmt.Sprintf("recipes/%d.%s", f.next, ext)
	f.files[p] = data
	return p, nil
}

func (f *fakeAssets) Delete(_ context.Context, p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, p)
	f.deleted = append(f.deleted, p)
	return nil
}

func (f *fakeAssets) URL(p string) string {
	return "/uploads/" + p
}

func strPtr(s string) *string {
	return &s
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
