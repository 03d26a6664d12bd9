package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shipDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

type orderSpec struct {
	reference    string
	customer     string
	consignee    string
	destination  kernel.Destination
	weight       string
	volume       string
	height       string
	consolidated bool
}

func newOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	if s.reference == "" {
		s.reference = "SO-" + kernel.NewUUID().ShortHex(6)
	}
	if s.weight == "" {
		s.weight = "100"
	}
	if s.height == "" {
		s.height = "1.2"
	}
	o, err := order.NewOrder(kernel.NewUUID(), order.Attributes{
		Reference:            s.reference,
		Customer:             s.customer,
		Consignee:            s.consignee,
		Destination:          s.destination,
		ShipDate:             shipDate,
		Weight:               decimal.RequireFromString(s.weight),
		Volume:               decimal.RequireFromString(s.volume),
		Height:               decimal.RequireFromString(s.height),
		ConsolidationAllowed: s.consolidated,
	})
	require.NoError(t, err)
	return o
}

var (
	berlin    = kernel.NewDestination("DE", "10115", "Berlin", "Invalidenstrasse", "116")
	vienna    = kernel.NewDestination("AT", "1010", "Wien", "Graben", "1")
	zurich    = kernel.NewDestination("CH", "8001", "Zurich", "Bahnhofstrasse", "1")
	madrid    = kernel.NewDestination("ES", "28001", "Madrid", "Serrano", "1")
	amsterdam = kernel.NewDestination("NL", "1012AB", "Amsterdam", "Damrak", "1")
	paris     = kernel.NewDestination("FR", "75001", "Paris", "Rivoli", "1")
)

func testRules() *rule.Set {
	maxPallets := int64(2)
	return rule.NewSet(
		[]rule.CountryRule{
			{Country: "CH", MaxHeight: decimal.NewNullDecimal(decimal.NewFromInt(2))},
			{Country: "AT", RestrictionCode: "AT-LIMIT", MaxPallets: &maxPallets},
		},
		[]rule.ParcelRule{
			{
				Country:   "DE",
				Allow:     true,
				MaxWeight: decimal.NewNullDecimal(decimal.NewFromInt(30)),
				MaxVolume: decimal.NewNullDecimal(decimal.RequireFromString("0.5")),
			},
		},
		[]rule.ForceDirectRule{
			{ShipToID: amsterdam.ShipToID(), Active: true},
		},
		rule.Thresholds{},
		[]rule.Lane{
			{ID: kernel.NewUUID(), Name: "DACH", Countries: []string{"DE", "AT", "CH"}, Priority: 10, Active: true},
			{ID: kernel.NewUUID(), Name: "Benelux", Countries: []string{"NL", "BE"}, Priority: 20, Active: true},
		},
	)
}

func newClassifier() *services.Classifier {
	return services.NewClassifier(testRules(), services.NewGroupageValidator(decimal.Zero))
}

func TestClassifier_Classify(t *testing.T) {
	classifier := newClassifier()

	t.Run("should classify a full truckload without a lane as direct full", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: madrid, volume: "85"})

		c := classifier.Classify(o)

		assert.Equal(t, order.DirectFull, c.Mode)
		assert.Equal(t, order.Open, c.Status)
		assert.Equal(t, order.NotBlocked, c.BlockReason)
		assert.Equal(t, int64(71), c.Metrics.Pallets)
		assert.Equal(t, "29.82", c.Metrics.LDM.String())
	})

	t.Run("should classify a small consolidatable order as parcel", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: berlin, volume: "0.1", weight: "10", consolidated: true})

		c := classifier.Classify(o)

		assert.Equal(t, order.Parcel, c.Mode)
		assert.Equal(t, order.Open, c.Status)
	})

	t.Run("should not offer parcel when consolidation is disallowed", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: berlin, volume: "0.1", weight: "10"})

		c := classifier.Classify(o)

		assert.Equal(t, order.Groupage, c.Mode)
	})

	t.Run("should classify sixteen cubic metres as direct partial", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: berlin, volume: "16"})

		c := classifier.Classify(o)

		assert.Equal(t, order.DirectPartial, c.Mode)
		assert.Equal(t, order.Open, c.Status)
	})

	t.Run("should force direct for a listed ship-to", func(t *testing.T) {
		small := newOrder(t, orderSpec{consignee: "Acme", destination: amsterdam, volume: "1"})
		large := newOrder(t, orderSpec{consignee: "Acme", destination: amsterdam, volume: "70"})

		assert.Equal(t, order.DirectPartial, classifier.Classify(small).Mode)
		assert.Equal(t, order.DirectFull, classifier.Classify(large).Mode)
	})

	t.Run("should block groupage without a lane", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: paris, volume: "1"})

		c := classifier.Classify(o)

		assert.Equal(t, order.Groupage, c.Mode)
		assert.Equal(t, order.Blocked, c.Status)
		assert.Equal(t, order.LaneNotFound, c.BlockReason)
		assert.Contains(t, c.BlockDetail, "FR")
	})

	t.Run("should block missing master data before checking lanes", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: kernel.NewDestination("FR", "", "Paris", "", ""), volume: "1"})

		c := classifier.Classify(o)

		assert.Equal(t, order.Blocked, c.Status)
		assert.Equal(t, order.MissingMasterdata, c.BlockReason)
	})

	t.Run("should block an order taller than the country allows", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: zurich, volume: "1", height: "2.1"})

		c := classifier.Classify(o)

		assert.Equal(t, order.Blocked, c.Status)
		assert.Equal(t, order.DimensionLimitExceeded, c.BlockReason)
	})

	t.Run("should hold groupage exceeding the country pallet limit", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: vienna, volume: "3"})

		c := classifier.Classify(o)

		assert.Equal(t, order.Groupage, c.Mode)
		assert.Equal(t, order.OnHold, c.Status)
		assert.Equal(t, "AT-LIMIT: Max Pallets 2 exceeded", c.HoldReason)
	})

	t.Run("should escalate groupage above the ldm ceiling", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Acme", destination: berlin, volume: "9"})

		c := classifier.Classify(o)

		assert.Equal(t, order.DirectPartial, c.Mode)
		assert.Equal(t, order.Open, c.Status)
	})

	t.Run("should request booking for distributor consignees", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "TechData Europe", destination: berlin, volume: "1"})

		c := classifier.Classify(o)

		assert.Equal(t, order.BookingAppointment, c.BookingType)
		assert.Equal(t, order.ManagerControlTower, c.BookingManager)
		assert.Equal(t, order.BookingRequested, c.Status)
	})

	t.Run("should return identical results when run twice", func(t *testing.T) {
		o := newOrder(t, orderSpec{consignee: "Amazon EU", destination: vienna, volume: "2", consolidated: true})

		assert.Equal(t, classifier.Classify(o), classifier.Classify(o))
	})
}

func TestClassifier_ModeFor_Thresholds(t *testing.T) {
	classifier := newClassifier()

	testCases := []struct {
		volume string
		want   order.ShippingMode
	}{
		{"70", order.DirectFull},
		{"69.99", order.DirectPartial},
		{"15.6", order.DirectPartial},
		{"15.59", order.Groupage},
	}
	for _, tc := range testCases {
		t.Run(tc.volume, func(t *testing.T) {
			o := newOrder(t, orderSpec{consignee: "Acme", destination: berlin, volume: tc.volume})

			assert.Equal(t, tc.want, classifier.ModeFor(o))
		})
	}
}

func TestBookingFor(t *testing.T) {
	testCases := []struct {
		name        string
		consignee   string
		weight      string
		wantType    order.BookingType
		wantManager order.BookingManager
	}{
		{"retailer", "amazon logistics", "100", order.BookingAppointment, order.ManagerCarrier},
		{"bol.com", "BOL.COM Distribution", "100", order.BookingAppointment, order.ManagerCarrier},
		{"distributor", "TECHDATA GmbH", "100", order.BookingAppointment, order.ManagerControlTower},
		{"third party logistics", "Logistics Corp Ltd", "100", order.BookingAdvice, order.ManagerCarrier},
		{"heavy order", "Acme", "10000.5", order.BookingAdvice, order.ManagerCarrier},
		{"at the weight cutoff", "Acme", "10000", order.BookingStandard, order.ManagerCarrier},
		{"standard", "Acme", "100", order.BookingStandard, order.ManagerCarrier},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, gotManager := services.BookingFor(tc.consignee, decimal.RequireFromString(tc.weight))

			assert.Equal(t, tc.wantType, gotType)
			assert.Equal(t, tc.wantManager, gotManager)
		})
	}
}
