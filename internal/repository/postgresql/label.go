package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storage"
)

const labelColumns = `label_id, order_id, site_id, label_index, tracking, carrier_id,
        anonymized, show_details, created_date, used_date, expiry_date`

type LabelRepo struct {
	db db.DB
}

func NewLabelRepo(db db.DB) storage.LabelRepository {
	return &LabelRepo{db: db}
}

func (r *LabelRepo) GetByOrderID(ctx context.Context, siteID, orderID int64) ([]*repository.Label, error) {
	var labels []*repository.Label
	err := r.db.Select(ctx, &labels, `
        SELECT `+labelColumns+`
        FROM shipping_labels
        WHERE site_id = $1 AND order_id = $2
        ORDER BY label_index ASC
    `, siteID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels for order %d: %w", orderID, err)
	}
	return labels, nil
}

func (r *LabelRepo) GetByID(ctx context.Context, siteID, orderID, labelID int64) (*repository.Label, error) {
	var label repository.Label
	err := r.db.Get(ctx, &label, `
        SELECT `+labelColumns+`
        FROM shipping_labels
        WHERE site_id = $1 AND order_id = $2 AND label_id = $3
    `, siteID, orderID, labelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &label, nil
}
