// Package order provides the Order aggregate: a shipment order imported from
// the ERP and moved through classification, pallet calculation, grouping,
// truck packing, planning and booking.
//
// The package includes:
//   - Order: the aggregate root with immutable Attributes and mutable planning state
//   - Status: the lifecycle state machine; invalid transitions fail with a
//     precondition error
//   - ShippingMode, BlockReason, BookingType, BookingManager: classification outcomes
//   - Classification, Metrics, Consolidation: results computed by domain
//     services and applied to the order in one step
//
// Key business rules:
//   - the ship-to id is derived from the destination at intake
//   - classification is only possible before the order joins a group
//   - an order on a truck is always in a group
//   - orders are never deleted; they are reopened or reset instead
package order
