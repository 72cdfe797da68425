package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db/mocks"
)

func TestInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		called := false
		err := db.InTx(ctx, mockDB, func(tx db.Tx) error {
			called = true
			assert.Equal(t, mockTx, tx)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("rollback on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		expectedErr := errors.New("insert failed")

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.InTx(ctx, mockDB, func(db.Tx) error { return expectedErr })
		assert.Equal(t, expectedErr, err)
	})

	t.Run("begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		expectedErr := errors.New("pool exhausted")
		mockDB.EXPECT().BeginTx(ctx).Return(nil, expectedErr)

		err := db.InTx(ctx, mockDB, func(db.Tx) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})
		assert.Equal(t, expectedErr, err)
	})

	t.Run("commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		commitErr := errors.New("serialization failure")

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Commit(ctx).Return(commitErr)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.InTx(ctx, mockDB, func(db.Tx) error { return nil })
		assert.ErrorIs(t, err, commitErr)
	})
}
