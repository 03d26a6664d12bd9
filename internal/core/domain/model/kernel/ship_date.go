package kernel

import "time"

// ShipDateLayout is the layout of ship dates in keys and API payloads.
const ShipDateLayout = "2006-01-02"

// ShipDate truncates t to its calendar day in UTC. Orders, groups and trucks
// are bucketed by this value, so every ship date entering the domain passes
// through it.
func ShipDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseShipDate parses a YYYY-MM-DD string.
func ParseShipDate(s string) (time.Time, error) {
	t, err := time.Parse(ShipDateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return ShipDate(t), nil
}
