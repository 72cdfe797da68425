package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storedcards"
)

type storedCardsStatus struct {
	HasLoadedFromServer bool `json:"has_loaded_from_server"`
	IsFetching          bool `json:"is_fetching"`
	IsDeleting          bool `json:"is_deleting"`
}

// loadedState returns the user's cards, fetching them on first access.
func (s *Server) loadedState(r *http.Request) (storedcards.State, error) {
	userID := userIDFromContext(r.Context())
	state := s.storage.StoredCards(userID)
	if storedcards.HasLoadedStoredCardsFromServer(state) {
		return state, nil
	}
	return s.storage.RefreshStoredCards(r.Context(), userID)
}

func (s *Server) handleListStoredCards(w http.ResponseWriter, r *http.Request) {
	state, err := s.loadedState(r)
	if err != nil {
		s.respondStorageError(w, err)
		return
	}

	cards := storedcards.GetStoredCards(state)
	if cards == nil {
		cards = []storedcards.StoredCard{}
	}
	respondJSON(w, http.StatusOK, cards)
}

func (s *Server) handleGetStoredCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	state, err := s.loadedState(r)
	if err != nil {
		s.respondStorageError(w, err)
		return
	}

	card, err := storedcards.GetStoredCardByID(state, id)
	if err != nil {
		s.respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleStoredCardsStatus(w http.ResponseWriter, r *http.Request) {
	state := s.storage.StoredCards(userIDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, storedCardsStatus{
		HasLoadedFromServer: storedcards.HasLoadedStoredCardsFromServer(state),
		IsFetching:          state.StoredCards.IsFetching,
		IsDeleting:          state.StoredCards.IsDeleting,
	})
}

func (s *Server) handleRefreshStoredCards(w http.ResponseWriter, r *http.Request) {
	state, err := s.storage.RefreshStoredCards(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleDeleteStoredCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.storage.DeleteStoredCard(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		s.respondStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
