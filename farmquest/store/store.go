package store

import (
	"sync"
	"time"

	"github.com/farmquest-india/farmquest/farmquest/logger"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// Store owns the application state. All writes go through Dispatch, which
// serializes transitions behind a mutex; reads hand out deep-copied snapshots
// so no caller can write through into store-owned memory.
type Store struct {
	mu      sync.RWMutex
	state   State
	version uint64
	now     func() time.Time

	subMu sync.Mutex
	subs  map[int]chan State
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the transition timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		now:   time.Now,
		subs:  make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one transition atomically and broadcasts the new snapshot
// to subscribers. Returns the transition result.
func (s *Store) Dispatch(a Action) Result {
	s.mu.Lock()
	next, result := Apply(s.state, a, s.now())
	if result.OK() {
		s.state = next
		s.version++
	}
	snapshot := s.state
	s.mu.Unlock()

	logger.LogStore(actionName(a), result.String())
	if result.OK() {
		s.broadcast(snapshot.Clone())
	}
	return result
}

// State returns a deep-copied snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version increases by one for every applied transition. Useful as a cache key.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	u := s.state.CurrentUser.Clone()
	return &u
}

// Subscribe registers a snapshot channel. Slow subscribers miss intermediate
// snapshots rather than blocking dispatch; they always receive a later one.
// The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan State, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan State, buffer)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *Store) broadcast(snapshot State) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func actionName(a Action) string {
	switch a.(type) {
	case SetLoading:
		return "set_loading"
	case SetError:
		return "set_error"
	case SetCurrentUser:
		return "set_current_user"
	case UpsertUser:
		return "upsert_user"
	case StartQuest:
		return "start_quest"
	case CompleteQuest:
		return "complete_quest"
	case UpdateQuestProgress:
		return "update_quest_progress"
	case UnlockAchievement:
		return "unlock_achievement"
	case AddNotification:
		return "add_notification"
	case MarkNotificationRead:
		return "mark_notification_read"
	case BookmarkArticle:
		return "bookmark_article"
	default:
		return "unknown"
	}
}
