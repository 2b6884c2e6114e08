// Package pipeline coordinates the category-scoped, paginated fetch of catalog
// items and the local favorites store. Each screen instance owns one session;
// sessions publish immutable snapshots instead of mutating shared fields, and
// a newly issued operation always supersedes the one before it.
package pipeline

import (
	"context"

	"pokexplorer/internal/model"
)

// CategoryFetcher fetches a category's name and ordered member list by id.
type CategoryFetcher interface {
	FetchCategory(ctx context.Context, id int) (*model.CategoryPage, error)
}

// ItemFetcher dereferences a member URL into a full item record.
type ItemFetcher interface {
	FetchItem(ctx context.Context, url string) (*model.Item, error)
}

// Favorites is the slice of the local store the sessions need.
type Favorites interface {
	List(ctx context.Context) ([]model.Item, error)
	IsFavorite(ctx context.Context, id int) (bool, error)
	Put(ctx context.Context, items ...model.Item) error
	Delete(ctx context.Context, id int) error
}

// State is the fetch session's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateLoadingMore
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateLoadingMore:
		return "loading-more"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Cursor tracks pagination progress through a category's member list.
// Offset is the page size; Index is the next unconsumed position. Index is
// reset on category change, only ever advances otherwise, and never exceeds
// the member-list length.
type Cursor struct {
	Offset int
	Index  int
}

// Snapshot is one immutable observation of a session. The item slice is a
// copy; holding a snapshot never aliases session state.
type Snapshot struct {
	State    State
	Category model.Category
	Cursor   Cursor
	Items    []model.Item
	// Err is the diagnostic message, set only when State is StateError.
	Err string
	// Selected is the item captured for the detail screen, if any.
	Selected *model.Item
}

// Observer receives every published snapshot. It runs on the session's
// mutation path and must not call back into the session.
type Observer func(Snapshot)
