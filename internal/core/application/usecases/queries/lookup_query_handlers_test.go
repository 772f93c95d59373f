package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if v := args.Get(0); v != nil {
		return v.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockShipmentRepository) GetAllOverdue(
	ctx context.Context, now time.Time,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.([]*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}

func testLookupOrder(t *testing.T) *order.Order {
	t.Helper()
	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("1 Main St", "", "Springfield", "IL", "62704", "US")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "Jane Doe", email, addr, "", "admin")
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestGetOrderByNumberQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing := testLookupOrder(t)

	t.Run("found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByOrderNumber", mock.Anything, existing.OrderNumber()).
			Return(existing, nil).Once()

		h := queries.NewGetOrderByNumberQueryHandler(repo)
		q, err := queries.NewGetOrderByNumberQuery(existing.OrderNumber())
		require.NoError(t, err)

		found, err := h.Handle(ctx, q)
		require.NoError(t, err)
		require.True(t, existing.ID().IsEqual(found.ID()))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByOrderNumber", mock.Anything, "ORD-MISSING").
			Return(nil, errs.NewObjectNotFoundError("order", "ORD-MISSING")).Once()

		h := queries.NewGetOrderByNumberQueryHandler(repo)
		q, err := queries.NewGetOrderByNumberQuery("ORD-MISSING")
		require.NoError(t, err)

		_, err = h.Handle(ctx, q)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		repo := new(MockOrderRepository)
		h := queries.NewGetOrderByNumberQueryHandler(repo)

		_, err := h.Handle(ctx, queries.GetOrderByNumberQuery{})
		require.ErrorIs(t, err, queries.ErrGetOrderByNumberQueryIsNotConstructed)
		repo.AssertNotCalled(t, "GetByOrderNumber", mock.Anything, mock.Anything)
	})
}

func TestGetShipmentByTrackingNumberQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	trackingNumber := kernel.GenerateTrackingNumber()

	t.Run("not found", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		repo.On("GetByTrackingNumber", mock.Anything, trackingNumber).
			Return(nil, errs.NewObjectNotFoundError("shipment", trackingNumber.String())).Once()

		h := queries.NewGetShipmentByTrackingNumberQueryHandler(repo)
		q, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
		require.NoError(t, err)

		_, err = h.Handle(ctx, q)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		h := queries.NewGetShipmentByTrackingNumberQueryHandler(repo)

		_, err := h.Handle(ctx, queries.GetShipmentByTrackingNumberQuery{})
		require.ErrorIs(t, err, queries.ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
		repo.AssertNotCalled(t, "GetByTrackingNumber", mock.Anything, mock.Anything)
	})
}
