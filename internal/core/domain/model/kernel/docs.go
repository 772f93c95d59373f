// Package kernel provides core domain primitives shared by the order-fulfillment
// domain model. It implements the fundamental building blocks following
// Domain-Driven Design principles that aggregates compose.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A currency-aware monetary amount backed by decimal arithmetic
//   - Address: An immutable postal address
//   - Email: A normalized, format-validated email address
//   - Weight and Dimensions: Unit-convertible physical package measurements
//   - TrackingNumber: A normalized carrier tracking identifier
//   - DomainEvent: The contract implemented by all aggregate events
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use. The zero value of
// every type is invalid and fails Validate; persistence adapters must rehydrate
// through the same constructors.
package kernel
