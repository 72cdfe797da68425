//go:generate mockgen -source ./item.go -destination=./mocks/item.go -package=mock_labelitem
package labelitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/intent"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/label"
)

var ErrActionNotOffered = errors.New("action is not offered for this label")

type Dispatcher interface {
	Dispatch(ctx context.Context, in intent.Intent) error
}

// Item is one row of an order's label list bound to its dispatcher.
type Item struct {
	orderID    int64
	siteID     int64
	label      label.ShippingLabel
	dispatcher Dispatcher
}

func New(orderID, siteID int64, l label.ShippingLabel, dispatcher Dispatcher) *Item {
	return &Item{
		orderID:    orderID,
		siteID:     siteID,
		label:      l,
		dispatcher: dispatcher,
	}
}

func (i *Item) View(now time.Time) label.ItemView {
	return label.Present(i.label, now)
}

func (i *Item) Refund(ctx context.Context, now time.Time) error {
	if !label.Actions(i.label, now).Refund {
		return fmt.Errorf("refund label %d: %w", i.label.LabelID, ErrActionNotOffered)
	}
	return i.dispatcher.Dispatch(ctx, intent.OpenRefundDialog(i.orderID, i.siteID, i.label.LabelID))
}

func (i *Item) Reprint(ctx context.Context, now time.Time) error {
	if !label.Actions(i.label, now).Reprint {
		return fmt.Errorf("reprint label %d: %w", i.label.LabelID, ErrActionNotOffered)
	}
	return i.dispatcher.Dispatch(ctx, intent.OpenReprintDialog(i.orderID, i.siteID, i.label.LabelID))
}

func (i *Item) Details(ctx context.Context) error {
	if !label.IsDetailsOffered(i.label) {
		return fmt.Errorf("details for label %d: %w", i.label.LabelID, ErrActionNotOffered)
	}
	return i.dispatcher.Dispatch(ctx, intent.OpenDetailsDialog(i.orderID, i.siteID, i.label.LabelID))
}

// CopyTracking records that the tracking number was copied. The copy itself
// happens on the client.
func (i *Item) CopyTracking(ctx context.Context) error {
	if !label.IsDetailsOffered(i.label) {
		return fmt.Errorf("copy tracking for label %d: %w", i.label.LabelID, ErrActionNotOffered)
	}
	return i.dispatcher.Dispatch(ctx, intent.RecordTracksEvent(intent.TrackingNumberCopyEvent, map[string]string{
		"carrier_id": i.label.CarrierID,
	}))
}
