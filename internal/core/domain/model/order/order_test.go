package order_test

import (
	"testing"
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "wash and fold", 4.5, created)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, " dry clean ", 2, created)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(customerID))
		assert.Equal(t, "dry clean", o.Services())
		assert.InDelta(t, 2.0, o.Weight(), 0.0001)
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, deletion.Active, o.Lifecycle())
		assert.Nil(t, o.LockerID())
		assert.Nil(t, o.LockerCode())
		assert.Nil(t, o.PaymentID())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, customerID, "wash", 1, created)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, "wash", 0, created)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "weight is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with blank services and missing customer", func(t *testing.T) {
		_, err := order.NewOrder(id, kernel.UUID{}, "   ", 1, created)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "services")
		assert.Contains(t, err.Error(), "customer")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_Apply(t *testing.T) {
	later := created.Add(time.Hour)

	t.Run("should change only supplied fields", func(t *testing.T) {
		o := newOrder(t)
		weight := 7.25

		require.NoError(t, o.Apply(order.Patch{Weight: &weight}, later))

		assert.Equal(t, "wash and fold", o.Services())
		assert.InDelta(t, 7.25, o.Weight(), 0.0001)
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should reject empty patch", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.Apply(order.Patch{}, later), errs.ErrValueIsRequired)
	})

	t.Run("should keep previous values on invalid patch", func(t *testing.T) {
		o := newOrder(t)
		services := "ironing"
		weight := -1.0

		require.Error(t, o.Apply(order.Patch{Services: &services, Weight: &weight}, later))
		assert.Equal(t, "wash and fold", o.Services())
		assert.InDelta(t, 4.5, o.Weight(), 0.0001)
	})

	t.Run("should reject deleted order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.FinalizeDeletion(later))
		services := "ironing"

		require.ErrorIs(t, o.Apply(order.Patch{Services: &services}, later), errs.ErrConflict)
	})
}

func TestOrder_AssignLocker(t *testing.T) {
	o := newOrder(t)
	code, err := locker.NewAccessCode("654321")
	require.NoError(t, err)

	require.NoError(t, o.AssignLocker(12, code, created.Add(time.Minute)))

	require.NotNil(t, o.LockerID())
	assert.Equal(t, kernel.ID(12), *o.LockerID())
	assert.Equal(t, "654321", o.LockerCode().String())

	require.Error(t, o.AssignLocker(0, code, created))
	require.Error(t, o.AssignLocker(13, locker.AccessCode{}, created))
}

func TestOrder_LinkPayment(t *testing.T) {
	o := newOrder(t)
	paymentID := kernel.NewUUID()

	require.NoError(t, o.LinkPayment(paymentID, created))
	assert.True(t, o.PaymentID().IsEqual(paymentID))
	require.Error(t, o.LinkPayment(kernel.UUID{}, created))
}

func TestOrder_DeletionLifecycle(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.RequestDeletion(created))
	assert.Equal(t, deletion.DeletionRequested, o.Lifecycle())
	require.ErrorIs(t, o.RequestDeletion(created), errs.ErrConflict)

	require.NoError(t, o.FinalizeDeletion(created))
	assert.Equal(t, deletion.Deleted, o.Lifecycle())
	require.ErrorIs(t, o.FinalizeDeletion(created), errs.ErrConflict)
}

func TestOrder_IsNewerThan(t *testing.T) {
	older, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "wash", 1, created)
	require.NoError(t, err)
	newer, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "wash", 1, created.Add(time.Second))
	require.NoError(t, err)

	assert.True(t, newer.IsNewerThan(older))
	assert.False(t, older.IsNewerThan(newer))
	assert.True(t, older.IsNewerThan(nil))

	low, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000001")
	require.NoError(t, err)
	high, err := kernel.UUIDFromString("ffffffff-0000-4000-8000-000000000001")
	require.NoError(t, err)
	a, err := order.NewOrder(low, kernel.NewUUID(), "wash", 1, created)
	require.NoError(t, err)
	b, err := order.NewOrder(high, kernel.NewUUID(), "wash", 1, created)
	require.NoError(t, err)

	assert.True(t, b.IsNewerThan(a))
	assert.False(t, a.IsNewerThan(b))
}

func TestRestoreOrder(t *testing.T) {
	code, err := locker.NewAccessCode("111222")
	require.NoError(t, err)
	lockerID := kernel.ID(4)

	state := order.State{
		ID:         kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		Services:   "wash",
		Weight:     3,
		LockerID:   &lockerID,
		LockerCode: &code,
		CreatedAt:  created,
		UpdatedAt:  created,
		Lifecycle:  deletion.DeletionRequested,
	}

	o, err := order.RestoreOrder(state)
	require.NoError(t, err)
	assert.Equal(t, deletion.DeletionRequested, o.Lifecycle())

	state.LockerCode = nil
	_, err = order.RestoreOrder(state)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
