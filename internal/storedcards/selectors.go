package storedcards

import (
	"errors"
	"fmt"
)

var ErrCardNotFound = errors.New("stored card not found")

func GetStoredCards(state State) []StoredCard {
	return state.StoredCards.Items
}

// GetStoredCardByID returns the first card whose ID matches. A missing id is
// reported as ErrCardNotFound.
func GetStoredCardByID(state State, id string) (StoredCard, error) {
	for _, card := range state.StoredCards.Items {
		if card.ID == id {
			return card, nil
		}
	}
	return StoredCard{}, fmt.Errorf("card %q: %w", id, ErrCardNotFound)
}

func HasLoadedStoredCardsFromServer(state State) bool {
	return state.StoredCards.HasLoadedFromServer
}
