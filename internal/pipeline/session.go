package pipeline

import (
	"context"
	"fmt"
	"sync"

	"pokexplorer/internal/model"
)

// Session drives the category-scoped, paginated fetch of catalog items for
// one list screen. All operations block until their work completes or is
// superseded; callers that need fire-and-forget run them in a goroutine.
//
// Supersession: every operation that starts a fetch bumps an internal
// generation and cancels the context of the one before it. Results carrying a
// stale generation are discarded, so a superseded fetch can never mutate state
// after its successor has started.
type Session struct {
	categories CategoryFetcher
	items      ItemFetcher
	pageSize   int
	observer   Observer

	mu          sync.Mutex
	gen         uint64
	cancel      context.CancelFunc
	state       State
	hasCategory bool
	category    model.Category
	members     []model.MemberRef
	acc         []model.Item
	cursor      Cursor
	errMsg      string
	selected    *model.Item
}

// NewSession creates an idle session. observer may be nil.
func NewSession(categories CategoryFetcher, items ItemFetcher, pageSize int, observer Observer) *Session {
	return &Session{
		categories: categories,
		items:      items,
		pageSize:   pageSize,
		observer:   observer,
		state:      StateIdle,
	}
}

// SelectCategory cancels any in-flight fetch, resets the cursor and the
// accumulated list, fetches the category's member list and then its first
// page. An empty member list is surfaced as the Error state.
func (s *Session) SelectCategory(cat model.Category) {
	ctx, gen := s.restart(cat)

	page, err := s.categories.FetchCategory(ctx, cat.ID)
	if err != nil {
		s.fail(gen, err.Error())
		return
	}
	if len(page.Members) == 0 {
		s.fail(gen, fmt.Sprintf("no members for category %q", cat.Name))
		return
	}

	refs := make([]model.MemberRef, len(page.Members))
	for n, slot := range page.Members {
		refs[n] = slot.Member
	}
	if !s.setMembers(gen, refs) {
		return
	}
	s.fetchPage(ctx, gen)
}

// LoadMore fetches the next page of the selected category. It is a no-op when
// no category is selected or a fetch is already in flight; it must never
// double-issue.
func (s *Session) LoadMore() {
	s.mu.Lock()
	if s.state == StateLoading || s.state == StateLoadingMore || len(s.members) == 0 {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = StateLoadingMore
	s.errMsg = ""
	s.publishLocked()
	s.mu.Unlock()

	s.fetchPage(ctx, gen)
}

// Refresh re-runs SelectCategory with the current category, restarting from
// the first page. No-op before the first selection.
func (s *Session) Refresh() {
	s.mu.Lock()
	if !s.hasCategory {
		s.mu.Unlock()
		return
	}
	cat := s.category
	s.mu.Unlock()

	s.SelectCategory(cat)
}

// RefreshIfBelowThreshold refreshes only when the accumulated list is shorter
// than one full page. This recovers the case where the user navigated away
// mid-page, cancelling the fetch, and came back to a short list.
func (s *Session) RefreshIfBelowThreshold() {
	s.mu.Lock()
	below := s.hasCategory && len(s.acc) < s.cursor.Offset
	cat := s.category
	s.mu.Unlock()

	if below {
		s.SelectCategory(cat)
	}
}

// SelectItem records the chosen item for the detail screen to read and
// publishes a snapshot carrying it. The fetch session itself is untouched.
func (s *Session) SelectItem(item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := item
	s.selected = &it
	s.publishLocked()
}

// ClearSelection drops the captured item, on return from the detail screen.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Cancel aborts any in-flight fetch without touching the accumulated list or
// cursor. Idempotent.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	if s.state == StateLoading || s.state == StateLoadingMore {
		if len(s.acc) > 0 {
			s.state = StateReady
		} else {
			s.state = StateIdle
		}
		s.publishLocked()
	}
}

// Snapshot returns the current state as an immutable copy.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// restart begins a new generation for cat: the predecessor fetch is cancelled
// before any state is reset, so its results can no longer be applied.
func (s *Session) restart(cat model.Category) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.hasCategory = true
	s.category = cat
	s.members = nil
	s.acc = nil
	s.cursor = Cursor{Offset: s.pageSize}
	s.errMsg = ""
	s.state = StateLoading
	s.publishLocked()
	return ctx, s.gen
}

// fetchPage resolves up to one page of member references starting at the
// cursor, advancing the cursor by one per reference consumed whether or not
// the individual fetch succeeds. A failed member is skipped, never retried
// and never surfaced on its own; only a still-empty accumulated list after
// the attempt produces the Error state.
func (s *Session) fetchPage(ctx context.Context, gen uint64) {
	for consumed := 0; ; consumed++ {
		if ctx.Err() != nil {
			return
		}

		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		if consumed >= s.cursor.Offset || s.cursor.Index >= len(s.members) {
			s.mu.Unlock()
			break
		}
		ref := s.members[s.cursor.Index]
		s.cursor.Index++
		s.mu.Unlock()

		item, err := s.items.FetchItem(ctx, ref.URL)
		if err != nil {
			continue
		}

		s.mu.Lock()
		if gen == s.gen {
			s.acc = append(s.acc, *item)
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	if len(s.acc) == 0 {
		s.state = StateError
		s.errMsg = fmt.Sprintf("no items could be loaded for category %q", s.category.Name)
	} else {
		s.state = StateReady
		s.errMsg = ""
	}
	s.publishLocked()
}

func (s *Session) fail(gen uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.state = StateError
	s.errMsg = msg
	s.publishLocked()
}

func (s *Session) setMembers(gen uint64, refs []model.MemberRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.members = refs
	return true
}

func (s *Session) snapshotLocked() Snapshot {
	items := make([]model.Item, len(s.acc))
	copy(items, s.acc)
	snap := Snapshot{
		State:    s.state,
		Category: s.category,
		Cursor:   s.cursor,
		Items:    items,
		Err:      s.errMsg,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}

func (s *Session) publishLocked() {
	if s.observer != nil {
		s.observer(s.snapshotLocked())
	}
}
