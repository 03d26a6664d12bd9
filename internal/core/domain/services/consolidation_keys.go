package services

import (
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// ConsolidationKeyFor returns the key shared by orders that may ship together.
//
// Orders that do not allow consolidation get INDIVIDUAL-<reference>. The
// others get CONSOL-<YYYYMMDD>-<HASH8>, HASH8 being the first 8 upper-case
// hex digits of SHA-256 over "<ship-to id>|<CONSIGNEE>". The key depends only
// on the order itself.
func ConsolidationKeyFor(o *order.Order) string {
	if !o.ConsolidationAllowed() {
		return "INDIVIDUAL-" + o.Reference()
	}
	consignee := strings.ToUpper(strings.TrimSpace(o.Consignee()))
	return fmt.Sprintf("CONSOL-%s-%s", o.ShipDate().Format("20060102"), kernel.Hash8(o.ShipToID()+"|"+consignee))
}

// RemixKey names a manual re-consolidation. The group id keeps it unique.
func RemixKey(shipDate time.Time, groupID kernel.UUID) string {
	return fmt.Sprintf("REMIX-%s-%s", shipDate.Format("20060102"), groupID.ShortHex(8))
}
