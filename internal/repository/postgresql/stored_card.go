package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storage"
)

type StoredCardRepo struct {
	db db.DB
}

func NewStoredCardRepo(db db.DB) storage.StoredCardRepository {
	return &StoredCardRepo{db: db}
}

func (r *StoredCardRepo) GetByUserID(ctx context.Context, userID string) ([]*repository.StoredCard, error) {
	var cards []*repository.StoredCard
	err := r.db.Select(ctx, &cards, `
        SELECT id, user_id, name, card_type, last_digits, expiry, payment_partner, added_at
        FROM stored_cards
        WHERE user_id = $1
        ORDER BY added_at ASC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stored cards for user %s: %w", userID, err)
	}
	return cards, nil
}

func (r *StoredCardRepo) Delete(ctx context.Context, userID, id string) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM stored_cards WHERE user_id = $1 AND id = $2", userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete stored card %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
