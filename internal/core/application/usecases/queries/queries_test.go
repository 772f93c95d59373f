package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetOpenOrdersQuery_Validate(t *testing.T) {
	q := queries.NewGetOpenOrdersQuery()
	require.NoError(t, q.Validate())

	var zero queries.GetOpenOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOpenOrdersQueryIsNotConstructed)
}

func TestGetActiveShipmentsQuery_Validate(t *testing.T) {
	q := queries.NewGetActiveShipmentsQuery()
	require.NoError(t, q.Validate())

	var zero queries.GetActiveShipmentsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetActiveShipmentsQueryIsNotConstructed)
}

func TestGetOrderByNumberQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q, err := queries.NewGetOrderByNumberQuery("ORD-20260828-ABCD1234")
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.Equal(t, "ORD-20260828-ABCD1234", q.OrderNumber())
	})

	t.Run("blank order number", func(t *testing.T) {
		_, err := queries.NewGetOrderByNumberQuery("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value", func(t *testing.T) {
		var zero queries.GetOrderByNumberQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderByNumberQueryIsNotConstructed)
	})
}

func TestGetShipmentByTrackingNumberQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		trackingNumber, err := kernel.NewTrackingNumber("1Z999AA10123456784")
		require.NoError(t, err)

		q, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.True(t, trackingNumber.IsEqual(q.TrackingNumber()))
	})

	t.Run("invalid tracking number", func(t *testing.T) {
		var invalid kernel.TrackingNumber
		_, err := queries.NewGetShipmentByTrackingNumberQuery(invalid)
		require.Error(t, err)
	})

	t.Run("zero value", func(t *testing.T) {
		var zero queries.GetShipmentByTrackingNumberQuery
		require.ErrorIs(t, zero.Validate(),
			queries.ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
	})
}
