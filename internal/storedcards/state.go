package storedcards

import "time"

// StoredCard is a saved payment method. Only ID matters for identity.
type StoredCard struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	CardType       string    `json:"card_type"`
	LastDigits     string    `json:"last_digits"`
	Expiry         string    `json:"expiry"`
	PaymentPartner string    `json:"payment_partner"`
	AddedAt        time.Time `json:"added_at"`
}

type StoredCardsState struct {
	HasLoadedFromServer bool         `json:"has_loaded_from_server"`
	IsFetching          bool         `json:"is_fetching"`
	IsDeleting          bool         `json:"is_deleting"`
	Items               []StoredCard `json:"items"`
}

type State struct {
	StoredCards StoredCardsState `json:"stored_cards"`
}
