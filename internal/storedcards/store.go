package storedcards

import (
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/metrics"
)

// Store keeps one stored-cards state per user. Readers always get copies.
// Entries live as long as the process; there is one per operator account.
type Store struct {
	mu      sync.RWMutex
	states  map[string]StoredCardsState
	// deletes counts successful deletes per user. A fetch result read before
	// a delete committed may still hold the deleted card.
	deletes map[string]uint64
	logger  *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		states:  make(map[string]StoredCardsState),
		deletes: make(map[string]uint64),
		logger:  logger,
	}
}

func (s *Store) Dispatch(userID string, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(userID, action)
}

// BeginFetch marks userID as fetching and returns the generation the fetch
// result has to be applied against.
func (s *Store) BeginFetch(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(userID, FetchRequested{})
	return s.deletes[userID]
}

// ApplyFetch stores items fetched since BeginFetch returned gen. When a delete
// succeeded in between, items are dropped, the fetch is closed as failed and
// applied is false.
func (s *Store) ApplyFetch(userID string, gen uint64, items []StoredCard) (state State, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deletes[userID] != gen {
		s.logger.Debug("Discarding stale stored cards fetch",
			zap.String("user_id", userID),
			zap.Uint64("fetch_generation", gen),
			zap.Uint64("current_generation", s.deletes[userID]),
		)
		return s.dispatchLocked(userID, FetchFailed{}), false
	}
	return s.dispatchLocked(userID, FetchSucceeded{Items: items}), true
}

func (s *Store) dispatchLocked(userID string, action Action) State {
	next := Reduce(s.states[userID], action)
	s.states[userID] = next
	if _, ok := action.(DeleteSucceeded); ok {
		s.deletes[userID]++
	}
	metrics.StoredCardsCachedUsers.Set(float64(len(s.states)))

	s.logger.Debug("Stored cards state updated",
		zap.String("user_id", userID),
		zap.String("action", actionName(action)),
		zap.Int("items", len(next.Items)),
	)

	return snapshot(next)
}

func (s *Store) Snapshot(userID string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.states[userID])
}

func snapshot(cards StoredCardsState) State {
	cards.Items = cloneItems(cards.Items)
	return State{StoredCards: cards}
}

func actionName(action Action) string {
	switch action.(type) {
	case FetchRequested:
		return "fetch_requested"
	case FetchSucceeded:
		return "fetch_succeeded"
	case FetchFailed:
		return "fetch_failed"
	case DeleteRequested:
		return "delete_requested"
	case DeleteSucceeded:
		return "delete_succeeded"
	case DeleteFailed:
		return "delete_failed"
	default:
		return "unknown"
	}
}
