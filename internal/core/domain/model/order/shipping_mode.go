package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ShippingMode is the transport mode assigned by classification.
type ShippingMode int

const (
	ModeUnknown ShippingMode = iota
	Groupage
	Parcel
	DirectPartial
	DirectFull
)

func getModeStrings() map[ShippingMode]string {
	return map[ShippingMode]string{
		ModeUnknown:   "UNKNOWN",
		Groupage:      "GROUPAGE",
		Parcel:        "PARCEL",
		DirectPartial: "DIRECT_PARTIAL",
		DirectFull:    "DIRECT_FULL",
	}
}

func (m ShippingMode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

func (m ShippingMode) Validate() error {
	if m < Groupage || m > DirectFull {
		return errs.NewValueIsInvalidErrorWithCause("shipping mode is invalid", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

// IsDirect reports whether the mode bypasses groupage consolidation.
func (m ShippingMode) IsDirect() bool {
	return m == DirectPartial || m == DirectFull
}

// BlockReason explains why classification blocked an order.
type BlockReason int

const (
	NotBlocked BlockReason = iota
	MissingMasterdata
	LaneNotFound
	DimensionLimitExceeded
)

func (r BlockReason) String() string {
	switch r {
	case MissingMasterdata:
		return "MISSING_MASTERDATA"
	case LaneNotFound:
		return "LANE_NOT_FOUND"
	case DimensionLimitExceeded:
		return "DIMENSION_LIMIT_EXCEEDED"
	case NotBlocked:
		return ""
	default:
		return "UNKNOWN"
	}
}
