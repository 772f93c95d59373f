package shipment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []shipment.Status {
	return []shipment.Status{
		shipment.Pending,
		shipment.Shipped,
		shipment.InTransit,
		shipment.OutForDelivery,
		shipment.Delivered,
		shipment.FailedDelivery,
		shipment.Delayed,
		shipment.Returned,
	}
}

func TestStatusValidate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		assert.Error(t, shipment.Unknown.Validate())
		assert.Error(t, shipment.Status(42).Validate())
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending", shipment.Pending.String())
	assert.Equal(t, "Shipped", shipment.Shipped.String())
	assert.Equal(t, "InTransit", shipment.InTransit.String())
	assert.Equal(t, "OutForDelivery", shipment.OutForDelivery.String())
	assert.Equal(t, "Delivered", shipment.Delivered.String())
	assert.Equal(t, "FailedDelivery", shipment.FailedDelivery.String())
	assert.Equal(t, "Delayed", shipment.Delayed.String())
	assert.Equal(t, "Returned", shipment.Returned.String())
	assert.Equal(t, "Unknown", shipment.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := shipment.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := shipment.StatusFromString("Lost")
		assert.Error(t, err)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := map[shipment.Status][]shipment.Status{
		shipment.Pending:        {shipment.Shipped},
		shipment.Shipped:        {shipment.InTransit, shipment.Delayed},
		shipment.InTransit:      {shipment.OutForDelivery, shipment.Delayed},
		shipment.OutForDelivery: {shipment.Delivered, shipment.FailedDelivery, shipment.Delayed},
		shipment.FailedDelivery: {shipment.Returned, shipment.InTransit},
		shipment.Delayed:        {shipment.InTransit},
		shipment.Delivered:      {},
		shipment.Returned:       {},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			want := false
			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[shipment.Status]bool{
		shipment.Delivered: true,
		shipment.Returned:  true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
	assert.False(t, shipment.Unknown.IsTerminal())
}
