package storedcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoredCards(t *testing.T) {
	t.Run("should return all cards", func(t *testing.T) {
		state := loadedState(storedCardsFromAPI)

		assert.Equal(t, storedCardsFromAPI, GetStoredCards(state))
	})

	t.Run("empty state", func(t *testing.T) {
		assert.Empty(t, GetStoredCards(State{}))
	})
}

func TestGetStoredCardByID(t *testing.T) {
	t.Run("should return a card by its ID", func(t *testing.T) {
		state := loadedState(storedCardsFromAPI)

		card, err := GetStoredCardByID(state, "12345")
		require.NoError(t, err)
		assert.Equal(t, storedCardsFromAPI[1], card)
	})

	t.Run("first match wins", func(t *testing.T) {
		duplicate := storedCardsFromAPI[1]
		duplicate.Name = "Shadowed"
		state := loadedState(append([]StoredCard{storedCardsFromAPI[1]}, duplicate))

		card, err := GetStoredCardByID(state, "12345")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", card.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		state := loadedState(storedCardsFromAPI)

		card, err := GetStoredCardByID(state, "999")
		assert.ErrorIs(t, err, ErrCardNotFound)
		assert.Equal(t, StoredCard{}, card)
	})
}

func TestHasLoadedStoredCardsFromServer(t *testing.T) {
	t.Run("should return true because the cards have been loaded", func(t *testing.T) {
		assert.True(t, HasLoadedStoredCardsFromServer(loadedState(storedCardsFromAPI)))
	})

	t.Run("should return false because the cards have not been loaded", func(t *testing.T) {
		state := State{StoredCards: StoredCardsState{IsFetching: true}}

		assert.False(t, HasLoadedStoredCardsFromServer(state))
	})
}
