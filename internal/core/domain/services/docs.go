// Package services provides the stateless domain services of the freight
// planner. They operate on orders and rule snapshots without touching
// storage; callers persist the outcome.
//
// The package includes:
//   - Classifier: picks shipping mode, blocking status and booking workflow
//   - GroupageValidator: checks groupage orders against LDM and country ceilings
//   - ConsolidationKeyFor and RemixKey: deterministic consolidation keys
//   - Metrics functions: pallets, LDM, consolidated totals and allocated shares
//   - TruckPacker: greedy first-fit packing of groups into trucks with splitting
package services
