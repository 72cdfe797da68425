package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/intent"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/label"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/labelitem"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storage/mocks"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storedcards"
)

var fixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type mocks struct {
	db     *mock_database.MockDB
	tx     *mock_database.MockTx
	labels *mock_storage.MockLabelRepository
	cards  *mock_storage.MockStoredCardRepository
	outbox *mock_storage.MockOutboxTaskRepository
}

func newTestStorage(t *testing.T) (*Storage, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		db:     mock_database.NewMockDB(ctrl),
		tx:     mock_database.NewMockTx(ctrl),
		labels: mock_storage.NewMockLabelRepository(ctrl),
		cards:  mock_storage.NewMockStoredCardRepository(ctrl),
		outbox: mock_storage.NewMockOutboxTaskRepository(ctrl),
	}
	s := NewStorage(m.db, m.labels, m.cards, m.outbox, storedcards.NewStore(zap.NewNop()), zap.NewNop())
	s.timeNow = func() time.Time { return fixedTime }
	return s, m
}

func labelRow() *repository.Label {
	created := fixedTime.AddDate(0, 0, -5)
	expiry := fixedTime.AddDate(0, 0, 20)
	return &repository.Label{
		LabelID:     31,
		OrderID:     1042,
		SiteID:      7,
		LabelIndex:  0,
		Tracking:    "9400111899223197428490",
		CarrierID:   "usps",
		ShowDetails: true,
		CreatedDate: &created,
		ExpiryDate:  &expiry,
	}
}

func TestStorage_OrderLabels(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, m := newTestStorage(t)

		old := labelRow()
		old.LabelID = 32
		old.LabelIndex = 1
		oldCreated := fixedTime.AddDate(0, 0, -40)
		old.CreatedDate = &oldCreated

		m.labels.EXPECT().GetByOrderID(ctx, int64(7), int64(1042)).Return([]*repository.Label{labelRow(), old}, nil)

		views, err := s.OrderLabels(ctx, 7, 1042)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, 1, views[0].Number)
		assert.Equal(t, label.ActionSet{Details: true, Refund: true, Reprint: true}, views[0].Actions)
		assert.Equal(t, 2, views[1].Number)
		assert.Equal(t, label.ActionSet{Details: true, Refund: false, Reprint: true}, views[1].Actions)
	})

	t.Run("repository error", func(t *testing.T) {
		s, m := newTestStorage(t)
		expectedErr := errors.New("database error")
		m.labels.EXPECT().GetByOrderID(ctx, int64(7), int64(1042)).Return(nil, expectedErr)

		views, err := s.OrderLabels(ctx, 7, 1042)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, views)
	})
}

func TestStorage_RequestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("writes refund intent to outbox", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.labels.EXPECT().GetByID(ctx, int64(7), int64(1042), int64(31)).Return(labelRow(), nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Equal(t, "label_dialogs", task.Topic)

				var in intent.Intent
				require.NoError(t, json.Unmarshal(task.Payload, &in))
				assert.Equal(t, intent.OpenRefundDialog(1042, 7, 31), in)
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, s.RequestRefund(ctx, 7, 1042, 31))
	})

	t.Run("label not found", func(t *testing.T) {
		s, m := newTestStorage(t)
		m.labels.EXPECT().GetByID(ctx, int64(7), int64(1042), int64(99)).Return(nil, repository.ErrObjectNotFound)

		assert.ErrorIs(t, s.RequestRefund(ctx, 7, 1042, 99), repository.ErrObjectNotFound)
	})

	t.Run("used label is rejected and nothing is written", func(t *testing.T) {
		s, m := newTestStorage(t)
		row := labelRow()
		used := fixedTime.AddDate(0, 0, -1)
		row.UsedDate = &used

		m.labels.EXPECT().GetByID(ctx, int64(7), int64(1042), int64(31)).Return(row, nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		assert.ErrorIs(t, s.RequestRefund(ctx, 7, 1042, 31), labelitem.ErrActionNotOffered)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		s, m := newTestStorage(t)
		expectedErr := errors.New("insert failed")

		m.labels.EXPECT().GetByID(ctx, int64(7), int64(1042), int64(31)).Return(labelRow(), nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(expectedErr)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		assert.ErrorIs(t, s.RequestRefund(ctx, 7, 1042, 31), expectedErr)
	})
}

func TestStorage_OtherActions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func(s *Storage) error
		expected intent.Intent
	}{
		{
			name:     "reprint",
			call:     func(s *Storage) error { return s.RequestReprint(ctx, 7, 1042, 31) },
			expected: intent.OpenReprintDialog(1042, 7, 31),
		},
		{
			name:     "details",
			call:     func(s *Storage) error { return s.OpenDetails(ctx, 7, 1042, 31) },
			expected: intent.OpenDetailsDialog(1042, 7, 31),
		},
		{
			name:     "copy tracking",
			call:     func(s *Storage) error { return s.CopyTracking(ctx, 7, 1042, 31) },
			expected: intent.RecordTracksEvent(intent.TrackingNumberCopyEvent, map[string]string{"carrier_id": "usps"}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestStorage(t)

			m.labels.EXPECT().GetByID(ctx, int64(7), int64(1042), int64(31)).Return(labelRow(), nil)
			m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
			m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
					assert.Equal(t, tc.expected.Topic(), task.Topic)
					in, err := intent.Unmarshal(task.Payload)
					require.NoError(t, err)
					assert.Equal(t, tc.expected, in)
					return nil
				})
			m.tx.EXPECT().Commit(ctx).Return(nil)
			m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

			assert.NoError(t, tc.call(s))
		})
	}
}

func TestStorage_RefreshStoredCards(t *testing.T) {
	ctx := context.Background()
	rows := []*repository.StoredCard{
		{ID: "12", UserID: "jane", CardType: "visa", LastDigits: "1234"},
		{ID: "12345", UserID: "jane", CardType: "mastercard", LastDigits: "2468"},
	}

	t.Run("success", func(t *testing.T) {
		s, m := newTestStorage(t)
		m.cards.EXPECT().GetByUserID(ctx, "jane").Return(rows, nil)

		state, err := s.RefreshStoredCards(ctx, "jane")
		require.NoError(t, err)

		assert.True(t, storedcards.HasLoadedStoredCardsFromServer(state))
		assert.False(t, state.StoredCards.IsFetching)
		card, err := storedcards.GetStoredCardByID(s.StoredCards("jane"), "12345")
		require.NoError(t, err)
		assert.Equal(t, "2468", card.LastDigits)
	})

	t.Run("read overlapping a delete is retried", func(t *testing.T) {
		s, m := newTestStorage(t)
		remaining := rows[1:]

		gomock.InOrder(
			m.cards.EXPECT().GetByUserID(ctx, "jane").
				DoAndReturn(func(_ context.Context, _ string) ([]*repository.StoredCard, error) {
					require.NoError(t, s.DeleteStoredCard(ctx, "jane", "12"))
					return rows, nil
				}),
			m.cards.EXPECT().GetByUserID(ctx, "jane").Return(remaining, nil),
		)
		m.cards.EXPECT().Delete(ctx, "jane", "12").Return(nil)

		state, err := s.RefreshStoredCards(ctx, "jane")
		require.NoError(t, err)

		assert.True(t, storedcards.HasLoadedStoredCardsFromServer(state))
		_, err = storedcards.GetStoredCardByID(state, "12")
		assert.ErrorIs(t, err, storedcards.ErrCardNotFound)
		_, err = storedcards.GetStoredCardByID(s.StoredCards("jane"), "12")
		assert.ErrorIs(t, err, storedcards.ErrCardNotFound)
		assert.Len(t, storedcards.GetStoredCards(s.StoredCards("jane")), 1)
	})

	t.Run("gives up after repeated overlapping deletes", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.cards.EXPECT().GetByUserID(ctx, "jane").
			DoAndReturn(func(_ context.Context, _ string) ([]*repository.StoredCard, error) {
				require.NoError(t, s.DeleteStoredCard(ctx, "jane", "12"))
				return rows, nil
			}).
			Times(maxRefreshAttempts)
		m.cards.EXPECT().Delete(ctx, "jane", "12").Return(nil).Times(maxRefreshAttempts)

		state, err := s.RefreshStoredCards(ctx, "jane")
		require.NoError(t, err)

		assert.False(t, state.StoredCards.IsFetching)
		assert.False(t, storedcards.HasLoadedStoredCardsFromServer(state))
		assert.Empty(t, storedcards.GetStoredCards(state))
	})

	t.Run("failure clears fetching flag", func(t *testing.T) {
		s, m := newTestStorage(t)
		expectedErr := errors.New("database error")
		m.cards.EXPECT().GetByUserID(ctx, "jane").Return(nil, expectedErr)

		state, err := s.RefreshStoredCards(ctx, "jane")
		assert.Equal(t, expectedErr, err)
		assert.False(t, state.StoredCards.IsFetching)
		assert.False(t, storedcards.HasLoadedStoredCardsFromServer(state))
	})
}

func TestStorage_DeleteStoredCard(t *testing.T) {
	ctx := context.Background()
	rows := []*repository.StoredCard{{ID: "12", UserID: "jane"}, {ID: "12345", UserID: "jane"}}

	t.Run("success", func(t *testing.T) {
		s, m := newTestStorage(t)
		m.cards.EXPECT().GetByUserID(ctx, "jane").Return(rows, nil)
		m.cards.EXPECT().Delete(ctx, "jane", "12").Return(nil)

		_, err := s.RefreshStoredCards(ctx, "jane")
		require.NoError(t, err)
		require.NoError(t, s.DeleteStoredCard(ctx, "jane", "12"))

		state := s.StoredCards("jane")
		assert.False(t, state.StoredCards.IsDeleting)
		assert.Len(t, storedcards.GetStoredCards(state), 1)
		_, err = storedcards.GetStoredCardByID(state, "12")
		assert.ErrorIs(t, err, storedcards.ErrCardNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		s, m := newTestStorage(t)
		m.cards.EXPECT().Delete(ctx, "jane", "404").Return(repository.ErrObjectNotFound)

		err := s.DeleteStoredCard(ctx, "jane", "404")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.False(t, s.StoredCards("jane").StoredCards.IsDeleting)
	})
}
