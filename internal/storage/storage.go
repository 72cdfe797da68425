package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/intent"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/label"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/labelitem"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storedcards"
)

const maxRefreshAttempts = 3

type Storage struct {
	db         db.DB
	labelRepo  LabelRepository
	cardRepo   StoredCardRepository
	outboxRepo OutboxTaskRepository
	cards      *storedcards.Store
	logger     *zap.Logger
	timeNow    func() time.Time
}

func NewStorage(
	database db.DB,
	labelRepo LabelRepository,
	cardRepo StoredCardRepository,
	outboxRepo OutboxTaskRepository,
	cards *storedcards.Store,
	logger *zap.Logger,
) *Storage {
	return &Storage{
		db:         database,
		labelRepo:  labelRepo,
		cardRepo:   cardRepo,
		outboxRepo: outboxRepo,
		cards:      cards,
		logger:     logger,
		timeNow:    time.Now,
	}
}

func (s *Storage) OrderLabels(ctx context.Context, siteID, orderID int64) ([]label.ItemView, error) {
	rows, err := s.labelRepo.GetByOrderID(ctx, siteID, orderID)
	if err != nil {
		return nil, err
	}

	now := s.timeNow()
	views := make([]label.ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, label.Present(toShippingLabel(row), now))
	}
	return views, nil
}

func (s *Storage) RequestRefund(ctx context.Context, siteID, orderID, labelID int64) error {
	return s.withItem(ctx, "refund", siteID, orderID, labelID, func(item *labelitem.Item) error {
		return item.Refund(ctx, s.timeNow())
	})
}

func (s *Storage) RequestReprint(ctx context.Context, siteID, orderID, labelID int64) error {
	return s.withItem(ctx, "reprint", siteID, orderID, labelID, func(item *labelitem.Item) error {
		return item.Reprint(ctx, s.timeNow())
	})
}

func (s *Storage) OpenDetails(ctx context.Context, siteID, orderID, labelID int64) error {
	return s.withItem(ctx, "details", siteID, orderID, labelID, func(item *labelitem.Item) error {
		return item.Details(ctx)
	})
}

func (s *Storage) CopyTracking(ctx context.Context, siteID, orderID, labelID int64) error {
	return s.withItem(ctx, "copy_tracking", siteID, orderID, labelID, func(item *labelitem.Item) error {
		return item.CopyTracking(ctx)
	})
}

// withItem loads the label and runs action with a dispatcher that writes
// intents to the outbox in the same transaction.
func (s *Storage) withItem(ctx context.Context, action string, siteID, orderID, labelID int64, fn func(item *labelitem.Item) error) error {
	l := s.logger.With(
		zap.String("action", action),
		zap.Int64("site_id", siteID),
		zap.Int64("order_id", orderID),
		zap.Int64("label_id", labelID),
	)

	row, err := s.labelRepo.GetByID(ctx, siteID, orderID, labelID)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			metrics.OperationErrorsTotal.WithLabelValues(action).Inc()
		}
		return err
	}

	err = db.InTx(ctx, s.db, func(tx db.Tx) error {
		dispatcher := &outboxDispatcher{tx: tx, repo: s.outboxRepo}
		return fn(labelitem.New(orderID, siteID, toShippingLabel(row), dispatcher))
	})
	switch {
	case errors.Is(err, labelitem.ErrActionNotOffered):
		l.Info("Label action not offered")
		metrics.ActionsRejectedTotal.WithLabelValues(action).Inc()
		return err
	case err != nil:
		l.Error("Label action failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues(action).Inc()
		return err
	}

	l.Debug("Label action dispatched")
	return nil
}

func (s *Storage) StoredCards(userID string) storedcards.State {
	return s.cards.Snapshot(userID)
}

// RefreshStoredCards reloads userID's cards. A read that overlapped a
// successful delete is discarded and retried, up to maxRefreshAttempts reads.
func (s *Storage) RefreshStoredCards(ctx context.Context, userID string) (storedcards.State, error) {
	for attempt := 1; ; attempt++ {
		gen := s.cards.BeginFetch(userID)

		rows, err := s.cardRepo.GetByUserID(ctx, userID)
		if err != nil {
			s.logger.Error("Failed to fetch stored cards", zap.String("user_id", userID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("refresh_stored_cards").Inc()
			return s.cards.Dispatch(userID, storedcards.FetchFailed{Err: err}), err
		}

		items := make([]storedcards.StoredCard, 0, len(rows))
		for _, row := range rows {
			items = append(items, toStoredCard(row))
		}

		state, applied := s.cards.ApplyFetch(userID, gen, items)
		if applied || attempt == maxRefreshAttempts {
			return state, nil
		}
	}
}

func (s *Storage) DeleteStoredCard(ctx context.Context, userID, id string) error {
	s.cards.Dispatch(userID, storedcards.DeleteRequested{ID: id})

	if err := s.cardRepo.Delete(ctx, userID, id); err != nil {
		s.cards.Dispatch(userID, storedcards.DeleteFailed{ID: id, Err: err})
		if !errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Error("Failed to delete stored card", zap.String("user_id", userID), zap.String("card_id", id), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("delete_stored_card").Inc()
		}
		return err
	}

	s.cards.Dispatch(userID, storedcards.DeleteSucceeded{ID: id})
	return nil
}

type outboxDispatcher struct {
	tx   db.Tx
	repo OutboxTaskRepository
}

func (d *outboxDispatcher) Dispatch(ctx context.Context, in intent.Intent) error {
	payload, err := in.Marshal()
	if err != nil {
		return err
	}

	task := &repository.OutboxTask{
		Payload: payload,
		Topic:   in.Topic(),
	}
	if err := d.repo.CreateTx(ctx, d.tx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s intent: %w", in.Kind, err)
	}

	metrics.IntentsDispatchedTotal.WithLabelValues(string(in.Kind)).Inc()
	return nil
}

func toShippingLabel(row *repository.Label) label.ShippingLabel {
	return label.ShippingLabel{
		LabelID:     row.LabelID,
		LabelIndex:  row.LabelIndex,
		OrderID:     row.OrderID,
		SiteID:      row.SiteID,
		CreatedDate: row.CreatedDate,
		UsedDate:    row.UsedDate,
		ExpiryDate:  row.ExpiryDate,
		Anonymized:  row.Anonymized,
		Tracking:    row.Tracking,
		CarrierID:   row.CarrierID,
		ShowDetails: row.ShowDetails,
	}
}

func toStoredCard(row *repository.StoredCard) storedcards.StoredCard {
	return storedcards.StoredCard{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		CardType:       row.CardType,
		LastDigits:     row.LastDigits,
		Expiry:         row.Expiry,
		PaymentPartner: row.PaymentPartner,
		AddedAt:        row.AddedAt,
	}
}
