// Package order provides domain entities and business logic for customer
// orders in the fulfillment system. It implements the Order aggregate root
// with lifecycle management, line-item bookkeeping and status transitions.
//
// The package includes:
//   - Order: the aggregate root owning customer data, ordered lines and status
//   - OrderDetail: a child entity snapshotting one ordered product line
//   - Status: a state machine enforcing valid order status transitions
//   - Domain events raised on creation, status change and cancellation
//
// Key business rules:
//   - The order total always equals the sum of its lines' quantity × unit price
//   - Adding a product already on the order merges into the existing line
//   - Delivered and Cancelled orders are immutable with respect to lines
//   - Status follows Pending -> Confirmed -> Processing -> Shipped -> Delivered,
//     with Cancelled reachable from every non-shipped, non-terminal status
package order
