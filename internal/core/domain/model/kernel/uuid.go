package kernel

import (
	"fmt"
	"slices"
	"strings"

	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, groups, trucks, lanes and events.
// It wraps github.com/google/uuid so that the nil UUID can never be used as
// an identifier: the zero value fails Validate.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphen-less forms.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("id", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte form, as stored by
// the persistence adapters. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// MustUUIDFromString is UUIDFromString for identifiers known at compile time
// (seed data, tests). It panics on malformed input.
func MustUUIDFromString(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID for adapters that persist it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// ShortHex returns the first n upper-case hex digits of the identifier.
// Truck numbers and remix keys use it to stay readable.
func (u UUID) ShortHex(n int) string {
	hex := strings.ToUpper(strings.ReplaceAll(u.id.String(), "-", ""))
	if n > len(hex) {
		n = len(hex)
	}
	return hex[:n]
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// CompareUUIDs orders identifiers by their byte representation. It gives
// batch operations a stable iteration order.
func CompareUUIDs(a, b UUID) int {
	return slices.Compare(a.id[:], b.id[:])
}
