package commands_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testEmail(t *testing.T) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	return email
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "", "Springfield", "IL", "62704", "US")
	require.NoError(t, err)
	return addr
}

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.NewFromFloat(amount), "USD")
	require.NoError(t, err)
	return m
}

func testWeight(t *testing.T) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(5.5, kernel.Pounds)
	require.NoError(t, err)
	return w
}

func testDimensions(t *testing.T) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(12, 8, 6, kernel.Inches)
	require.NoError(t, err)
	return d
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Jane Doe", testEmail(t), testAddress(t), "", "admin")
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func testPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), testMoney(t, 49.99), "card", "")
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func testProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "W-1", "", testMoney(t, 9.99), stock)
	require.NoError(t, err)
	return p
}

func testShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "UPS",
		testAddress(t), testAddress(t),
		testWeight(t), testDimensions(t), testMoney(t, 15.99),
		nil, "admin", "")
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s
}
