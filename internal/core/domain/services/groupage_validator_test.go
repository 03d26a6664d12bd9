package services_test

import (
	"testing"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroupageValidator_Validate(t *testing.T) {
	validator := services.NewGroupageValidator(decimal.Zero)
	maxPallets := int64(4)
	countryRule := &rule.CountryRule{
		Country:         "GB",
		RestrictionCode: "UK-LIMIT",
		MaxHeight:       decimal.NewNullDecimal(decimal.RequireFromString("1.8")),
		MaxPallets:      &maxPallets,
		MaxVolume:       decimal.NewNullDecimal(decimal.NewFromInt(4)),
		MaxLDM:          decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
	}
	fits := services.Measurements{
		Height:  decimal.RequireFromString("1.5"),
		Pallets: 2,
		Volume:  decimal.RequireFromString("2.4"),
		LDM:     decimal.RequireFromString("0.84"),
	}

	t.Run("should default the ceiling to three loading metres", func(t *testing.T) {
		assert.Equal(t, "3", validator.LDMCeiling().String())
	})

	t.Run("should pass other modes through", func(t *testing.T) {
		m := fits
		m.Height = decimal.NewFromInt(5)

		v := validator.Validate(order.Parcel, order.Open, m, countryRule)

		assert.Equal(t, services.Verdict{Mode: order.Parcel, Status: order.Open}, v)
	})

	t.Run("should keep the incoming status of other modes", func(t *testing.T) {
		v := validator.Validate(order.DirectPartial, order.Blocked, fits, countryRule)

		assert.Equal(t, services.Verdict{Mode: order.DirectPartial, Status: order.Blocked}, v)
	})

	t.Run("should escalate above the ldm ceiling before country checks", func(t *testing.T) {
		m := fits
		m.LDM = decimal.RequireFromString("3.36")
		m.Height = decimal.NewFromInt(5)

		v := validator.Validate(order.Groupage, order.Open, m, countryRule)

		assert.Equal(t, order.DirectPartial, v.Mode)
		assert.Equal(t, order.Open, v.Status)
		assert.Empty(t, v.HoldReason)
	})

	t.Run("should keep groupage open within limits", func(t *testing.T) {
		v := validator.Validate(order.Groupage, order.Open, fits, countryRule)

		assert.Equal(t, services.Verdict{Mode: order.Groupage, Status: order.Open}, v)
	})

	t.Run("should keep groupage open without a country rule", func(t *testing.T) {
		m := fits
		m.Height = decimal.NewFromInt(5)

		v := validator.Validate(order.Groupage, order.Open, m, nil)

		assert.Equal(t, order.Open, v.Status)
	})

	testCases := []struct {
		name   string
		mutate func(m *services.Measurements)
		want   string
	}{
		{"height", func(m *services.Measurements) { m.Height = decimal.RequireFromString("1.9") }, "UK-LIMIT: Max Height 1.8m exceeded"},
		{"pallets", func(m *services.Measurements) { m.Pallets = 5 }, "UK-LIMIT: Max Pallets 4 exceeded"},
		{"volume", func(m *services.Measurements) { m.Volume = decimal.RequireFromString("4.1") }, "UK-LIMIT: Max Volume 4m3 exceeded"},
		{"ldm", func(m *services.Measurements) { m.LDM = decimal.RequireFromString("1.68") }, "UK-LIMIT: Max LDM 1.5m exceeded"},
		{
			"first violation wins",
			func(m *services.Measurements) {
				m.Pallets = 9
				m.Volume = decimal.NewFromInt(9)
			},
			"UK-LIMIT: Max Pallets 4 exceeded",
		},
	}
	for _, tc := range testCases {
		t.Run("should hold on exceeded "+tc.name, func(t *testing.T) {
			m := fits
			tc.mutate(&m)

			v := validator.Validate(order.Groupage, order.Open, m, countryRule)

			assert.Equal(t, order.Groupage, v.Mode)
			assert.Equal(t, order.OnHold, v.Status)
			assert.Equal(t, tc.want, v.HoldReason)
		})
	}
}
