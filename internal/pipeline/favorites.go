package pipeline

import (
	"context"
	"sync"

	"pokexplorer/internal/model"
)

// FavoritesSession backs the favorites list screen. It is store-only: no
// network fetch is ever issued from here.
type FavoritesSession struct {
	favorites Favorites

	mu       sync.Mutex
	items    []model.Item
	selected *model.Item
}

func NewFavoritesSession(favorites Favorites) *FavoritesSession {
	return &FavoritesSession{favorites: favorites}
}

// Load reads the favorites list from the store. An empty table yields an
// empty list, not an error.
func (f *FavoritesSession) Load(ctx context.Context) error {
	items, err := f.favorites.List(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.items = items
	f.mu.Unlock()
	return nil
}

// Remove deletes the favorite with the given id and reloads the list, the
// long-press removal flow of the list screen.
func (f *FavoritesSession) Remove(ctx context.Context, id int) error {
	if err := f.favorites.Delete(ctx, id); err != nil {
		return err
	}
	return f.Load(ctx)
}

// Items returns a copy of the loaded list.
func (f *FavoritesSession) Items() []model.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]model.Item, len(f.items))
	copy(items, f.items)
	return items
}

// SelectItem captures an item for the detail screen, as the list session does.
func (f *FavoritesSession) SelectItem(item model.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := item
	f.selected = &it
}

func (f *FavoritesSession) Selected() *model.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selected == nil {
		return nil
	}
	sel := *f.selected
	return &sel
}
