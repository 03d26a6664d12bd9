// Package rule provides the read-only rule data consulted by classification,
// validation and grouping: country ceilings, parcel eligibility, force-direct
// overrides, direct-shipping thresholds and lanes.
//
// Rules are plain values. They are maintained outside this service and are
// read as one Set snapshot per run.
package rule
