package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliases(t *testing.T) {
	cases := map[string]Unit{
		"MM":         Millimeter,
		"mm.":        Millimeter,
		" Milli ":    Millimeter,
		"metre":      Meter,
		"M":          Meter,
		`"`:          Inch,
		"'":          Foot,
		"INCH":       Inch,
		"cm":         Centimeter,
		"nonsense12": Unknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Normalize(raw), "raw=%q", raw)
	}
}

func TestFactorToMM(t *testing.T) {
	assert.Equal(t, 1.0, FactorToMM(Millimeter))
	assert.Equal(t, 10.0, FactorToMM(Centimeter))
	assert.Equal(t, 1000.0, FactorToMM(Meter))
	assert.Equal(t, 25.4, FactorToMM(Inch))
	assert.Equal(t, 304.8, FactorToMM(Foot))
	assert.Equal(t, 914.4, FactorToMM(Yard))
}

func TestResolveMetadataUnitsWins(t *testing.T) {
	r := Resolve(MetadataSource{Units: "millimeter"}, 100)
	assert.Equal(t, Millimeter, r.Unit)
	assert.GreaterOrEqual(t, r.Confidence, 0.8)
}

func TestResolveSTEPHeaderSIUnit(t *testing.T) {
	prefix := "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\n#1=SI_UNIT(*,.MILLI.,.METRE.);\nENDSEC;\nEND-ISO-10303-21;"
	r := Resolve(MetadataSource{IsSTEP: true, RawPrefix: prefix}, 100)
	assert.Equal(t, Millimeter, r.Unit)
	assert.GreaterOrEqual(t, r.Confidence, 0.8)
}

func TestResolveSTEPHeaderInch(t *testing.T) {
	// SI units are always metric, so exercise the UNCERTAINTY_MEASURE_WITH_UNIT
	// fallback pattern to resolve a non-metric (inch) authoring unit.
	prefix := "#58=UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.0E-5),.INCH.,'distance');"
	r := Resolve(MetadataSource{IsSTEP: true, RawPrefix: prefix}, 254)
	assert.Equal(t, Inch, r.Unit)
}

func TestResolveDefaultsToMillimeterAtLowConfidence(t *testing.T) {
	r := Resolve(MetadataSource{}, 0)
	assert.Equal(t, Millimeter, r.Unit)
	assert.Equal(t, 0.2, r.Confidence)
}

func TestResolveDXFBBoxMagnitude(t *testing.T) {
	// A 500mm-scale DXF part with no metadata at all.
	r := Resolve(MetadataSource{IsDXF: true}, 500)
	assert.Equal(t, Millimeter, r.Unit)
}

func TestValidateOverridesMeterToMillimeter(t *testing.T) {
	// Declared meter but a 1200mm-scale (1.2 "meter") part is still in meter's
	// own plausible range [0.001,100], so no override should occur here;
	// use a value clearly outside meter's range instead to force an override.
	r := validate(Resolution{Unit: Meter, Confidence: 0.85, Source: "metadata.units"}, 500)
	assert.Equal(t, Millimeter, r.Unit)
	assert.Equal(t, "bbox-override", r.Source)
}

func TestValidateKeepsPlausibleUnit(t *testing.T) {
	r := validate(Resolution{Unit: Millimeter, Confidence: 0.9, Source: "metadata.units"}, 100)
	assert.Equal(t, Millimeter, r.Unit)
	assert.GreaterOrEqual(t, r.Confidence, 0.9)
}
