package kernel

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not built by NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination is the delivery address of an order.
//
// All parts are normalized on construction: surrounding whitespace is
// trimmed and the country code is upper-cased. Every part may be empty;
// incomplete addresses are accepted here and turned into a blocked order by
// the classifier rather than rejected at intake.
type Destination struct {
	country     string
	zip         string
	city        string
	street      string
	houseNumber string
	guard       guard.ConstructorGuard
}

// NewDestination normalizes and stores the address parts.
func NewDestination(country, zip, city, street, houseNumber string) Destination {
	return Destination{
		country:     strings.ToUpper(strings.TrimSpace(country)),
		zip:         strings.TrimSpace(zip),
		city:        strings.TrimSpace(city),
		street:      strings.TrimSpace(street),
		houseNumber: strings.TrimSpace(houseNumber),
		guard:       guard.NewConstructorGuard(),
	}
}

func (d Destination) Country() string     { return d.country }
func (d Destination) Zip() string         { return d.zip }
func (d Destination) City() string        { return d.city }
func (d Destination) Street() string      { return d.street }
func (d Destination) HouseNumber() string { return d.houseNumber }

// Validate checks that the destination came from NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// ShipToID derives the stable identifier of the physical delivery point:
//
//	SHIP-<COUNTRY>-<ZIP without spaces>-<HASH8>
//
// HASH8 is the first 8 upper-case hex digits of the SHA-256 digest over
// COUNTRY|ZIP|CITY|STREET|HOUSE, each part upper-cased. Two orders with the
// same address therefore always share a ship-to id. Without a country or zip
// there is no delivery point and an empty string is returned.
func (d Destination) ShipToID() string {
	if d.country == "" || d.zip == "" {
		return ""
	}

	zip := strings.ToUpper(strings.ReplaceAll(d.zip, " ", ""))
	canonical := strings.Join([]string{
		d.country,
		zip,
		strings.ToUpper(d.city),
		strings.ToUpper(d.street),
		strings.ToUpper(d.houseNumber),
	}, "|")

	return fmt.Sprintf("SHIP-%s-%s-%s", d.country, zip, Hash8(canonical))
}

// Hash8 returns the first 8 upper-case hex digits of the SHA-256 digest of s.
func Hash8(s string) string {
	sum := sha256.Sum256([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:8]
}
