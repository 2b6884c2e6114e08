package pipeline

import (
	"context"
	"sync"

	"pokexplorer/internal/model"
)

// DetailSession backs the detail screen for a single item. The favorite state
// is read from the store once on entry; no network call is involved. Toggles
// for the item are serialized: the session mutex is held across the store
// write, so at most one toggle is in flight at a time.
type DetailSession struct {
	favorites Favorites

	mu              sync.Mutex
	item            model.Item
	fav             bool
	refreshRequired bool
}

// NewDetailSession captures item and reads its favorite state.
func NewDetailSession(ctx context.Context, favorites Favorites, item model.Item) (*DetailSession, error) {
	fav, err := favorites.IsFavorite(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return &DetailSession{favorites: favorites, item: item, fav: fav}, nil
}

func (d *DetailSession) Item() model.Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.item
}

func (d *DetailSession) IsFavorite() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fav
}

// ToggleFavorite inserts the item into the store if it is not a favorite and
// deletes it if it is, returning the new membership state. A successful
// toggle marks the owning list screen as refresh-required.
func (d *DetailSession) ToggleFavorite(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fav {
		if err := d.favorites.Delete(ctx, d.item.ID); err != nil {
			return d.fav, err
		}
		d.fav = false
	} else {
		if err := d.favorites.Put(ctx, d.item); err != nil {
			return d.fav, err
		}
		d.fav = true
	}
	d.refreshRequired = true
	return d.fav, nil
}

// RefreshRequired reports whether the favorites list changed while this
// screen was open, so the caller can refresh its list on return.
func (d *DetailSession) RefreshRequired() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshRequired
}
