package testutil

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"pokexplorer/internal/model"
	"pokexplorer/internal/store"
)

var dbSeq atomic.Int64

// SetupTestStore creates an in-memory SQLite store with schema. Each call
// gets its own named memory database so tests do not share state.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	s, err := store.New(dsn)
	if err != nil {
		t.Fatalf("Failed to init in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// FakeCatalog is an in-memory stand-in for the remote catalog client. A
// missing category id or item URL yields an error result, the same way the
// real client folds HTTP failures into errors.
type FakeCatalog struct {
	Pages map[int]model.CategoryPage
	Items map[string]model.Item

	// CategoryGate, when non-nil, blocks FetchCategory until the gate is
	// closed or the context is cancelled. Used to test supersession.
	CategoryGate chan struct{}
	// ItemGate does the same for every FetchItem call.
	ItemGate chan struct{}

	mu            sync.Mutex
	categoryCalls int
	itemCalls     int
}

func (f *FakeCatalog) FetchCategory(ctx context.Context, id int) (*model.CategoryPage, error) {
	if f.CategoryGate != nil {
		select {
		case <-f.CategoryGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.categoryCalls++
	page, ok := f.Pages[id]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("response code: 404 (Not Found)")
	}
	return &page, nil
}

func (f *FakeCatalog) FetchItem(ctx context.Context, url string) (*model.Item, error) {
	if f.ItemGate != nil {
		select {
		case <-f.ItemGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.itemCalls++
	item, ok := f.Items[url]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("response code: 404 (Not Found)")
	}
	return &item, nil
}

func (f *FakeCatalog) CategoryCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categoryCalls
}

func (f *FakeCatalog) ItemCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemCalls
}

// Page builds a category page with n resolvable members and registers the
// matching items in the catalog. Member URLs are "<name>/<i>" and item ids
// start at base.
func (f *FakeCatalog) Page(id int, name string, n, base int) {
	if f.Pages == nil {
		f.Pages = map[int]model.CategoryPage{}
	}
	if f.Items == nil {
		f.Items = map[string]model.Item{}
	}
	page := model.CategoryPage{Name: name}
	for i := 0; i < n; i++ {
		url := fmt.Sprintf("%s/%d", name, i)
		page.Members = append(page.Members, model.MemberSlot{
			Member: model.MemberRef{Name: fmt.Sprintf("%s-%d", name, i), URL: url},
			Slot:   i + 1,
		})
		f.Items[url] = model.Item{
			ID:      base + i,
			Name:    fmt.Sprintf("%s-%d", name, i),
			Weight:  10 + i,
			Height:  5 + i,
			Sprites: model.Sprites{FrontDefault: url + "/sprite.png"},
			Stats:   []model.Stat{{BaseValue: 40 + i, Stat: model.StatName{Name: "hp"}}},
		}
	}
	f.Pages[id] = page
}
