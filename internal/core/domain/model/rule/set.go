package rule

import (
	"cmp"
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"
)

// Set is an immutable snapshot of all rule data used by one classification
// or grouping run. Taking the snapshot once per batch keeps every order of
// the batch evaluated against the same rules.
type Set struct {
	countryRules map[string]CountryRule
	parcelRules  map[string]ParcelRule
	forceDirect  []ForceDirectRule
	thresholds   Thresholds
	lanes        []Lane
}

// NewSet indexes the rules. Lanes are kept sorted by ascending priority,
// ties broken by name.
func NewSet(
	countryRules []CountryRule,
	parcelRules []ParcelRule,
	forceDirect []ForceDirectRule,
	thresholds Thresholds,
	lanes []Lane,
) *Set {
	s := &Set{
		countryRules: make(map[string]CountryRule, len(countryRules)),
		parcelRules:  make(map[string]ParcelRule, len(parcelRules)),
		forceDirect:  slices.Clone(forceDirect),
		thresholds:   thresholds.WithDefaults(),
		lanes:        slices.Clone(lanes),
	}
	for _, r := range countryRules {
		s.countryRules[strings.ToUpper(r.Country)] = r
	}
	for _, r := range parcelRules {
		s.parcelRules[strings.ToUpper(r.Country)] = r
	}
	slices.SortStableFunc(s.lanes, func(a, b Lane) int {
		return cmp.Or(cmp.Compare(a.Priority, b.Priority), cmp.Compare(a.Name, b.Name))
	})
	return s
}

func (s *Set) Thresholds() Thresholds { return s.thresholds }

func (s *Set) CountryRule(country string) (CountryRule, bool) {
	r, ok := s.countryRules[strings.ToUpper(country)]
	return r, ok
}

func (s *Set) ParcelRule(country string) (ParcelRule, bool) {
	r, ok := s.parcelRules[strings.ToUpper(country)]
	return r, ok
}

// ForcesDirect reports whether any active force-direct rule matches.
func (s *Set) ForcesDirect(shipToID, country, customer string) bool {
	return slices.ContainsFunc(s.forceDirect, func(r ForceDirectRule) bool {
		return r.Matches(shipToID, country, customer)
	})
}

// LaneFor returns the highest-priority active lane serving the country.
func (s *Set) LaneFor(country string) (Lane, bool) {
	if country == "" {
		return Lane{}, false
	}
	for _, l := range s.lanes {
		if l.Covers(country) {
			return l, true
		}
	}
	return Lane{}, false
}

// Lane returns the lane with the given identifier, active or not.
func (s *Set) Lane(id kernel.UUID) (Lane, bool) {
	for _, l := range s.lanes {
		if l.ID.IsEqual(id) {
			return l, true
		}
	}
	return Lane{}, false
}

// Lanes returns the lanes in priority order.
func (s *Set) Lanes() []Lane {
	return slices.Clone(s.lanes)
}
