package ports

import (
	"context"

	"freight/internal/core/domain/model/rule"
)

// RuleRepository reads the master data that drives classification and
// grouping. The planner never writes rules.
type RuleRepository interface {
	// Snapshot loads all country, parcel and force-direct rules, the
	// thresholds and the lanes as one consistent set.
	Snapshot(ctx context.Context) (*rule.Set, error)
}
