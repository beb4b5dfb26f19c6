package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"
	mock_interfaces "github.com/kaosom/zipquote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validEstimate(id string) entities.Estimate {
	e := entities.Estimate{
		ID:             id,
		CreatedAt:      time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		Contractor:     entities.Party{Name: "Ana"},
		Client:         entities.Party{Name: "Bob"},
		TaxRatePercent: 10,
		Items: []entities.LineItem{
			{ID: id + "-1", Name: "Tile", Quantity: 2, UnitPrice: 50},
			{ID: id + "-2", Name: "Grout", Quantity: 1, UnitPrice: 100},
		},
	}
	e.Recompute()
	return e
}

func headerOf(owner string, e entities.Estimate) interfaces.EstimateHeader {
	e.Items = nil
	return interfaces.EstimateHeader{OwnerID: owner, Estimate: e}
}

func TestRemoteEstimateStore_FetchAll(t *testing.T) {
	t.Run("assembles items and repairs totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		store := NewRemoteEstimateStore(rows)

		good := validEstimate("e1")
		stale := validEstimate("e2")
		staleHeader := headerOf("u1", stale)
		staleHeader.Estimate.Total = 1

		rows.EXPECT().ListHeadersByOwner(gomock.Any(), "u1").Return([]interfaces.EstimateHeader{headerOf("u1", good), staleHeader}, nil)
		rows.EXPECT().ListItems(gomock.Any(), "e1").Return(good.Items, nil)
		rows.EXPECT().ListItems(gomock.Any(), "e2").Return(stale.Items, nil)

		got, err := store.FetchAll(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, good, got[0])
		assert.Equal(t, 220.0, got[1].Total)
		assert.True(t, got[1].HasConsistentTotals())
	})

	t.Run("empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().ListHeadersByOwner(gomock.Any(), "u1").Return(nil, nil)

		got, err := NewRemoteEstimateStore(rows).FetchAll(context.Background(), "u1")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("plain row errors become server faults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().ListHeadersByOwner(gomock.Any(), "u1").Return(nil, errors.New("boom"))

		_, err := NewRemoteEstimateStore(rows).FetchAll(context.Background(), "u1")
		assert.True(t, entities.IsRemoteKind(err, entities.RemoteServerFault))
	})

	t.Run("classified row errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().ListHeadersByOwner(gomock.Any(), "u1").Return([]interfaces.EstimateHeader{headerOf("u1", validEstimate("e1"))}, nil)
		rows.EXPECT().ListItems(gomock.Any(), "e1").Return(nil, entities.NewRemoteError(entities.RemoteUnreachable, "list_items", errors.New("timeout")))

		_, err := NewRemoteEstimateStore(rows).FetchAll(context.Background(), "u1")
		assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnreachable))
	})

	t.Run("empty user id panics", func(t *testing.T) {
		store := NewRemoteEstimateStore(nil)
		assert.Panics(t, func() { _, _ = store.FetchAll(context.Background(), "") })
		assert.Panics(t, func() { _ = store.Upsert(context.Background(), "", validEstimate("e1")) })
		assert.Panics(t, func() { _ = store.DeleteByID(context.Background(), "", "e1") })
	})
}

func TestRemoteEstimateStore_Upsert(t *testing.T) {
	t.Run("writes header then replaces items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		store := NewRemoteEstimateStore(rows)
		e := validEstimate("e1")

		gomock.InOrder(
			rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(interfaces.EstimateHeader{}, false, nil),
			rows.EXPECT().UpsertHeader(gomock.Any(), headerOf("u1", e)).Return(nil),
			rows.EXPECT().DeleteItemsByEstimate(gomock.Any(), "e1").Return(nil),
			rows.EXPECT().InsertItems(gomock.Any(), "e1", e.Items).Return(nil),
		)

		require.NoError(t, store.Upsert(context.Background(), "u1", e))
	})

	t.Run("recomputes inconsistent totals before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		store := NewRemoteEstimateStore(rows)
		e := validEstimate("e1")
		tampered := e
		tampered.Total = 5

		rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(headerOf("u1", e), true, nil)
		rows.EXPECT().UpsertHeader(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h interfaces.EstimateHeader) error {
				if h.Estimate.Total != 220 || h.Estimate.Items != nil {
					t.Fatalf("unexpected header: %+v", h)
				}
				return nil
			},
		)
		rows.EXPECT().DeleteItemsByEstimate(gomock.Any(), "e1").Return(nil)
		rows.EXPECT().InsertItems(gomock.Any(), "e1", e.Items).Return(nil)

		require.NoError(t, store.Upsert(context.Background(), "u1", tampered))
	})

	t.Run("estimate owned by another account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(headerOf("someone-else", validEstimate("e1")), true, nil)

		err := NewRemoteEstimateStore(rows).Upsert(context.Background(), "u1", validEstimate("e1"))
		assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnauthorized))
	})

	t.Run("item insert failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(interfaces.EstimateHeader{}, false, nil)
		rows.EXPECT().UpsertHeader(gomock.Any(), gomock.Any()).Return(nil)
		rows.EXPECT().DeleteItemsByEstimate(gomock.Any(), "e1").Return(nil)
		rows.EXPECT().InsertItems(gomock.Any(), "e1", gomock.Any()).Return(entities.NewRemoteError(entities.RemoteUnreachable, "insert_items", nil))

		err := NewRemoteEstimateStore(rows).Upsert(context.Background(), "u1", validEstimate("e1"))
		assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnreachable))
	})

	t.Run("header failure stops before touching items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(interfaces.EstimateHeader{}, false, nil)
		rows.EXPECT().UpsertHeader(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		err := NewRemoteEstimateStore(rows).Upsert(context.Background(), "u1", validEstimate("e1"))
		assert.True(t, errors.Is(err, entities.ErrRemote))
	})
}

func TestRemoteEstimateStore_DeleteByID(t *testing.T) {
	t.Run("items before header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		gomock.InOrder(
			rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(headerOf("u1", validEstimate("e1")), true, nil),
			rows.EXPECT().DeleteItemsByEstimate(gomock.Any(), "e1").Return(nil),
			rows.EXPECT().DeleteHeader(gomock.Any(), "e1").Return(nil),
		)

		require.NoError(t, NewRemoteEstimateStore(rows).DeleteByID(context.Background(), "u1", "e1"))
	})

	t.Run("unknown id is success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().GetHeader(gomock.Any(), "nope").Return(interfaces.EstimateHeader{}, false, nil)
		rows.EXPECT().DeleteItemsByEstimate(gomock.Any(), "nope").Return(nil)

		require.NoError(t, NewRemoteEstimateStore(rows).DeleteByID(context.Background(), "u1", "nope"))
	})

	t.Run("other owner is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
		rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(headerOf("u2", validEstimate("e1")), true, nil)

		err := NewRemoteEstimateStore(rows).DeleteByID(context.Background(), "u1", "e1")
		assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnauthorized))
	})
}

func TestRemoteEstimateStore_GetCountExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	rows := mock_interfaces.NewMockIEstimateRowStore(ctrl)
	store := NewRemoteEstimateStore(rows)
	e := validEstimate("e1")

	rows.EXPECT().GetHeader(gomock.Any(), "e1").Return(headerOf("u1", e), true, nil).Times(2)
	rows.EXPECT().ListItems(gomock.Any(), "e1").Return(e.Items, nil)
	rows.EXPECT().GetHeader(gomock.Any(), "e2").Return(interfaces.EstimateHeader{}, false, nil).Times(2)
	rows.EXPECT().ListHeadersByOwner(gomock.Any(), "u1").Return([]interfaces.EstimateHeader{headerOf("u1", e)}, nil)

	got, found, err := store.Get(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, e, got)

	_, found, err = store.Get(context.Background(), "u1", "e2")
	require.NoError(t, err)
	assert.False(t, found)

	n, err := store.Count(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err := store.Exists(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = store.Exists(context.Background(), "u1", "e2")
	require.NoError(t, err)
	assert.False(t, ok)
}
