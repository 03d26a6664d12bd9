package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/services"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	shipDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	nextDay  = shipDate.AddDate(0, 0, 1)

	dachLaneID    = kernel.MustUUIDFromString("6f1c1f0e-2f43-4a43-9b7c-0d7f3a2b1c01")
	beneluxLaneID = kernel.MustUUIDFromString("6f1c1f0e-2f43-4a43-9b7c-0d7f3a2b1c02")

	berlin  = kernel.NewDestination("DE", "10115", "Berlin", "Invalidenstrasse", "116")
	munich  = kernel.NewDestination("DE", "80331", "Munich", "Marienplatz", "8")
	vienna  = kernel.NewDestination("AT", "1010", "Wien", "Graben", "1")
	madrid  = kernel.NewDestination("ES", "28001", "Madrid", "Serrano", "1")
	antwerp = kernel.NewDestination("BE", "2000", "Antwerpen", "Meir", "1")

	validator = services.NewGroupageValidator(decimal.Zero)
)

func testRules() *rule.Set {
	return rule.NewSet(
		nil,
		[]rule.ParcelRule{
			{Country: "DE", Allow: true, MaxWeight: decimal.NewNullDecimal(decimal.NewFromInt(30))},
		},
		nil,
		rule.Thresholds{},
		[]rule.Lane{
			{ID: dachLaneID, Name: "DACH", Countries: []string{"DE", "AT", "CH"}, Priority: 10, Active: true},
			{ID: beneluxLaneID, Name: "Benelux", Countries: []string{"NL", "BE"}, Priority: 20, Active: true},
		},
	)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type orderSpec struct {
	reference    string
	consignee    string
	destination  kernel.Destination
	shipDate     time.Time
	weight       string
	volume       string
	consolidated bool
}

func (s orderSpec) attributes() order.Attributes {
	if s.reference == "" {
		s.reference = "SO-" + kernel.NewUUID().ShortHex(6)
	}
	if s.consignee == "" {
		s.consignee = "Acme"
	}
	if s.destination.Country() == "" {
		s.destination = berlin
	}
	if s.shipDate.IsZero() {
		s.shipDate = shipDate
	}
	if s.weight == "" {
		s.weight = "200"
	}
	if s.volume == "" {
		s.volume = "2"
	}
	return order.Attributes{
		Reference:            s.reference,
		Consignee:            s.consignee,
		Destination:          s.destination,
		ShipDate:             s.shipDate,
		Weight:               decimal.RequireFromString(s.weight),
		Volume:               decimal.RequireFromString(s.volume),
		Height:               decimal.RequireFromString("1.2"),
		ConsolidationAllowed: s.consolidated,
	}
}

func openOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), s.attributes())
	require.NoError(t, err)
	return o
}

// calculatedOrder returns an order that went through classification and
// an individual calculation in the given mode.
func calculatedOrder(t *testing.T, s orderSpec, mode order.ShippingMode) *order.Order {
	t.Helper()
	draft := openOrder(t, s)
	metrics := services.IndividualMetrics(draft.Volume())
	o, err := order.RestoreOrder(draft.ID(), draft.Attributes(), order.State{
		Status:        order.Calculated,
		Mode:          mode,
		EffectiveMode: mode,
		BookingType:   order.BookingStandard,
		Metrics:       metrics,
		Consolidation: order.Consolidation{
			Key:           services.ConsolidationKeyFor(draft),
			SiblingCount:  1,
			Volume:        draft.Volume(),
			Pallets:       metrics.Pallets,
			LDM:           metrics.LDM,
			AllocatedLDM:  metrics.LDM,
			EffectiveMode: mode,
		},
	})
	require.NoError(t, err)
	return o
}

// groupedOrder returns a GROUPED groupage order of the given loading metres.
func groupedOrder(t *testing.T, groupID kernel.UUID, ldm string) *order.Order {
	t.Helper()
	draft := openOrder(t, orderSpec{})
	o, err := order.RestoreOrder(draft.ID(), draft.Attributes(), order.State{
		Status:        order.Grouped,
		Mode:          order.Groupage,
		EffectiveMode: order.Groupage,
		Metrics:       order.Metrics{Pallets: 1, LDM: decimal.RequireFromString(ldm)},
		GroupID:       &groupID,
	})
	require.NoError(t, err)
	return o
}

// laneGroup stores an OPEN groupage group of the DACH lane whose members
// carry the given loading metres.
func laneGroup(t *testing.T, store *memoryStore, reference string, ldms ...string) (*group.Group, []*order.Order) {
	t.Helper()
	g, err := group.NewGroup(kernel.NewUUID(), reference, &dachLaneID, "", shipDate, order.Groupage)
	require.NoError(t, err)

	members := lo.Map(ldms, func(ldm string, _ int) *order.Order { return groupedOrder(t, g.ID(), ldm) })
	require.NoError(t, g.Recalculate(members))

	store.seed(t, members...)
	store.seedGroup(t, g)
	return g, members
}

func (s *memoryStore) seedGroup(t *testing.T, g *group.Group) {
	t.Helper()
	clone, err := cloneGroup(g)
	require.NoError(t, err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID()] = clone
}

// classifiedOrder returns an OPEN order that was classified into mode.
func classifiedOrder(t *testing.T, s orderSpec, mode order.ShippingMode) *order.Order {
	t.Helper()
	draft := openOrder(t, s)
	o, err := order.RestoreOrder(draft.ID(), draft.Attributes(), order.State{
		Status:        order.Open,
		Mode:          mode,
		EffectiveMode: mode,
		BookingType:   order.BookingStandard,
		Metrics:       services.IndividualMetrics(draft.Volume()),
	})
	require.NoError(t, err)
	return o
}
