package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteMatchesWorkedExample(t *testing.T) {
	material := Material{ID: "steel-304", Name: "304 Stainless", PricePerLb: 4.75}

	q := Quote(material, 10, "14AWG", 48, 3, 2)

	assert.InDelta(t, 9.12, q.MaterialWeightLb, 1e-9)
	assert.InDelta(t, 8.6, q.LaborHours, 1e-9)
	assert.Equal(t, Cents(182605), q.Total)
	assert.Equal(t, "1826.05", q.Total.String())
	assert.Equal(t, "182.61", q.PerPart.String())
}

func TestQuoteUnknownGaugeFallsBackToDefault(t *testing.T) {
	material := Material{ID: "m", PricePerLb: 1}
	q := Quote(material, 1, "not-a-gauge", 10, 0, 0)
	assert.Equal(t, defaultGauge, q.Gauge)
}

func TestQuoteDiscountTiers(t *testing.T) {
	material := Material{ID: "m", PricePerLb: 1}

	assert.Equal(t, 0.0, Quote(material, 10, "14AWG", 10, 0, 0).DiscountRate)
	assert.Equal(t, 0.05, Quote(material, 11, "14AWG", 10, 0, 0).DiscountRate)
	assert.Equal(t, 0.05, Quote(material, 50, "14AWG", 10, 0, 0).DiscountRate)
	assert.Equal(t, 0.10, Quote(material, 51, "14AWG", 10, 0, 0).DiscountRate)
	assert.Equal(t, 0.10, Quote(material, 100, "14AWG", 10, 0, 0).DiscountRate)
	assert.Equal(t, 0.15, Quote(material, 101, "14AWG", 10, 0, 0).DiscountRate)
}

func TestQuotePerPartTimesQuantityApproximatesTotal(t *testing.T) {
	material := Material{ID: "m", PricePerLb: 2.10}
	q := Quote(material, 25, "12AWG", 36, 4, 3)
	assert.InDelta(t, float64(q.Total), float64(q.PerPart)*25, 30)
}
