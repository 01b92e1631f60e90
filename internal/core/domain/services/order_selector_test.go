package services_test

import (
	"testing"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLatestOrder(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()

	t.Run("ties on creation time fall back to the higher id", func(t *testing.T) {
		a := customerOrder(t, customerID, at)
		b := customerOrder(t, customerID, at)
		want := a
		if b.ID().String() > a.ID().String() {
			want = b
		}

		got, err := services.SelectLatestOrder([]*order.Order{a, b})
		require.NoError(t, err)
		assert.True(t, got.IsEqual(want))

		got, err = services.SelectLatestOrder([]*order.Order{b, a})
		require.NoError(t, err)
		assert.True(t, got.IsEqual(want))
	})

	t.Run("deletion requested orders still count", func(t *testing.T) {
		o := customerOrder(t, customerID, at)
		require.NoError(t, o.RequestDeletion(at))

		got, err := services.SelectLatestOrder([]*order.Order{o})
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("only deleted orders means none", func(t *testing.T) {
		o := customerOrder(t, customerID, at)
		require.NoError(t, o.FinalizeDeletion(at))

		_, err := services.SelectLatestOrder([]*order.Order{o})
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
