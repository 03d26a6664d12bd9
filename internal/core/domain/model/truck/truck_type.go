package truck

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Type is a vehicle preset with a fixed loading length in metres.
type Type int

const (
	TypeUnknown Type = iota
	Standard
	Combi1
	Combi2
	LZV
	Custom
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Standard: "STANDARD",
		Combi1:   "COMBI_1",
		Combi2:   "COMBI_2",
		LZV:      "LZV",
		Custom:   "CUSTOM",
	}
}

func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseType accepts preset names case-insensitively.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, str := range getTypeStrings() {
		if str == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("truck type", fmt.Errorf("%q is not a known truck type", s))
}

// CapacityFor returns the loading length of a preset. CUSTOM trucks use
// custom, which must be positive; it is ignored for the other presets.
func CapacityFor(t Type, custom decimal.Decimal) (decimal.Decimal, error) {
	switch t {
	case Standard:
		return decimal.RequireFromString("13.6"), nil
	case Combi1:
		return decimal.RequireFromString("14.9"), nil
	case Combi2:
		return decimal.RequireFromString("15.64"), nil
	case LZV:
		return decimal.RequireFromString("21.05"), nil
	case Custom:
		if !custom.IsPositive() {
			return decimal.Zero, errs.NewValueIsOutOfRangeError("capacity", custom.String(), "0.01", "unbounded")
		}
		return custom, nil
	default:
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("truck type", fmt.Errorf("%d is not a valid truck type", t))
	}
}
