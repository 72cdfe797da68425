package storedcards

import "time"

var storedCardsFromAPI = []StoredCard{
	{
		ID:             "12",
		UserID:         "1",
		Name:           "Jane Doe",
		CardType:       "visa",
		LastDigits:     "1234",
		Expiry:         "2026-01-31",
		PaymentPartner: "stripe",
		AddedAt:        time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC),
	},
	{
		ID:             "12345",
		UserID:         "1",
		Name:           "Jane Doe",
		CardType:       "mastercard",
		LastDigits:     "2468",
		Expiry:         "2027-05-31",
		PaymentPartner: "paygate",
		AddedAt:        time.Date(2025, 2, 14, 16, 5, 0, 0, time.UTC),
	},
}

func loadedState(items []StoredCard) State {
	return State{
		StoredCards: StoredCardsState{
			HasLoadedFromServer: true,
			IsFetching:          false,
			IsDeleting:          false,
			Items:               items,
		},
	}
}
