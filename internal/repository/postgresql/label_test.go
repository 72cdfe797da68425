package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository/postgresql"
)

func TestLabelRepo_GetByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewLabelRepo(mockDB)

		created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		testLabels := []*repository.Label{
			{LabelID: 31, OrderID: 1042, SiteID: 7, LabelIndex: 0, CreatedDate: &created},
			{LabelID: 32, OrderID: 1042, SiteID: 7, LabelIndex: 1, Anonymized: true},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(int64(1042))).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Label, _ string, _ ...interface{}) error {
				*dest = testLabels
				return nil
			})

		labels, err := repo.GetByOrderID(ctx, 7, 1042)
		assert.NoError(t, err)
		assert.Equal(t, testLabels, labels)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewLabelRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		labels, err := repo.GetByOrderID(ctx, 7, 1042)
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, labels)
	})
}

func TestLabelRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("label found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewLabelRepo(mockDB)

		testLabel := &repository.Label{LabelID: 31, OrderID: 1042, SiteID: 7, Tracking: "1Z999", CarrierID: "ups"}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(int64(1042)), gomock.Eq(int64(31))).
			DoAndReturn(func(_ context.Context, dest *repository.Label, _ string, _ ...interface{}) error {
				*dest = *testLabel
				return nil
			})

		l, err := repo.GetByID(ctx, 7, 1042, 31)
		assert.NoError(t, err)
		assert.Equal(t, testLabel, l)
	})

	t.Run("label not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewLabelRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		l, err := repo.GetByID(ctx, 7, 1042, 404)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, l)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewLabelRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		l, err := repo.GetByID(ctx, 7, 1042, 31)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, l)
	})
}
