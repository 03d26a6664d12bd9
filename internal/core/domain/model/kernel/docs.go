// Package kernel provides the value objects shared by every aggregate of the
// planning core.
//
// The package includes:
//   - UUID: identifier of orders, groups, trucks, lanes and events
//   - Destination: normalized delivery address and its derived ship-to id
//   - ShipDate: calendar-day normalization used to bucket planning work
//
// Quantities (volume, weight, height, loading metres) are carried as
// github.com/shopspring/decimal values throughout the model so that sums and
// roundings stay exact.
package kernel
