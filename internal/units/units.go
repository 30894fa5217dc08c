//-----------------------------------------------------------------------------
/*

Unit Resolver

Determines the authoring unit of a decoded file from decoder metadata,
STEP header text, or geometry-scale plausibility, and validates the
chosen unit against the decoded bounding box.

*/
//-----------------------------------------------------------------------------

package units

import (
	"math"
	"regexp"
	"strings"
)

//-----------------------------------------------------------------------------

// Unit is a canonical authoring unit.
type Unit string

// Recognized units.
const (
	Millimeter Unit = "millimeter"
	Centimeter Unit = "centimeter"
	Meter      Unit = "meter"
	Micrometer Unit = "micrometer"
	Nanometer  Unit = "nanometer"
	Inch       Unit = "inch"
	Foot       Unit = "foot"
	Yard       Unit = "yard"
	Unknown    Unit = "unknown"
)

// factorToMM maps each unit to its exact multiplicative factor to millimeters.
var factorToMM = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Meter:      1000,
	Micrometer: 1e-3,
	Nanometer:  1e-6,
	Inch:       25.4,
	Foot:       304.8,
	Yard:       914.4,
}

// FactorToMM returns u's exact multiplicative factor to millimeters.
// Unknown returns a factor of 1 (treated as already millimeters).
func FactorToMM(u Unit) float64 {
	if f, ok := factorToMM[u]; ok {
		return f
	}
	return 1
}

//-----------------------------------------------------------------------------

// alias maps a normalized (lowercased, trimmed, dot-stripped) token to a Unit.
var alias = map[string]Unit{
	"metre": Meter, "meter": Meter, "m": Meter,
	"milli": Millimeter, "millimetre": Millimeter, "millimeter": Millimeter, "mm": Millimeter,
	"centimetre": Centimeter, "centimeter": Centimeter, "cm": Centimeter,
	"micrometre": Micrometer, "micrometer": Micrometer, "um": Micrometer, "micron": Micrometer,
	"nanometre": Nanometer, "nanometer": Nanometer, "nm": Nanometer,
	"inch": Inch, "in": Inch, `"`: Inch,
	"foot": Foot, "feet": Foot, "ft": Foot, "'": Foot,
	"yard": Yard, "yd": Yard,
}

// Normalize lowercases, trims, strips dots, and maps a raw unit token to a
// canonical Unit. Unrecognized tokens return Unknown.
func Normalize(raw string) Unit {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	if u, ok := alias[s]; ok {
		return u
	}
	return Unknown
}

//-----------------------------------------------------------------------------

// Resolution is the result of unit resolution: a canonical unit and a
// confidence in [0, 1].
type Resolution struct {
	Unit       Unit
	Confidence float64
	// Source names which resolution step produced the unit, for diagnostics.
	Source string
}

// MetadataSource is the subset of MetadataBag the resolver needs,
// decoupled from internal/meshtypes to keep this package dependency-free.
type MetadataSource struct {
	Units          string
	MetadataUnits  string
	LengthUnit     string
	IsSTEP         bool
	IsDXF          bool
	RawPrefix      string
}

//-----------------------------------------------------------------------------

// stepUnitPatterns are evaluated in order; the first match wins.
var stepUnitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`SI_UNIT\s*\(\s*\*\s*,\s*\.([^,)]+)\.\s*,`),
	regexp.MustCompile(`SI_UNIT\s*\(\s*\*\s*,\s*([^,)]+)\s*,`),
	regexp.MustCompile(`LENGTH_UNIT\s*\(\s*\)\s*,\s*\.([^,)]+)\.`),
	regexp.MustCompile(`UNIT\s*\(\s*LENGTH_MEASURE\s*,\s*\.([^,)]+)\.`),
	regexp.MustCompile(`UNCERTAINTY_MEASURE_WITH_UNIT[^(]*\([^,]*,\s*\.([^,)]+)\.`),
}

// scanSTEPHeader scans the raw prefix for one of the recognized STEP unit
// declarations, returning the matched token (unnormalized) or "".
func scanSTEPHeader(prefix string) string {
	for _, re := range stepUnitPatterns {
		m := re.FindStringSubmatch(prefix)
		if len(m) == 2 {
			return m[1]
		}
	}
	return ""
}

//-----------------------------------------------------------------------------

// typicalRange gives the plausible [min, max] magnitude (in the unit's own
// scale) and a typical value, used by Validate to sanity-check a detected
// unit against the decoded bounding box's longest dimension.
type typicalRange struct {
	min, max, typical float64
}

var ranges = map[Unit]typicalRange{
	Millimeter: {0.1, 10000, 100},
	Meter:      {0.001, 100, 0.1},
	Inch:       {0.01, 1000, 4},
	Foot:       {0.001, 100, 0.33},
	Centimeter: {0.01, 1000, 10},
}

// neighbors lists the units Validate will try overriding to, in order of preference.
var neighbors = map[Unit][]Unit{
	Meter:      {Millimeter},
	Millimeter: {Meter},
	Foot:       {Inch},
	Inch:       {Foot},
	Centimeter: {Meter, Millimeter},
}

// Resolve determines the authoring unit from decoder metadata, STEP header
// text, or geometry plausibility, in that order of preference, then
// validates it against maxDim (the longest bounding-box dimension, in the
// resolved unit's own scale) and may override to a better-fitting neighbor.
func Resolve(meta MetadataSource, maxDim float64) Resolution {
	r := resolveRaw(meta)
	return validate(r, maxDim)
}

func resolveRaw(meta MetadataSource) Resolution {
	if meta.Units != "" {
		if u := Normalize(meta.Units); u != Unknown {
			return Resolution{Unit: u, Confidence: 0.9, Source: "metadata.units"}
		}
	}
	if meta.MetadataUnits != "" {
		if u := Normalize(meta.MetadataUnits); u != Unknown {
			return Resolution{Unit: u, Confidence: 0.85, Source: "metadata.metadata.units"}
		}
	}
	if meta.IsSTEP && meta.LengthUnit != "" {
		if u := Normalize(meta.LengthUnit); u != Unknown {
			return Resolution{Unit: u, Confidence: 0.85, Source: "metadata.lengthUnit"}
		}
	}
	if meta.IsSTEP {
		if raw := scanSTEPHeader(meta.RawPrefix); raw != "" {
			if u := Normalize(raw); u != Unknown {
				return Resolution{Unit: u, Confidence: 0.8, Source: "step-header-regex"}
			}
		}
	}
	// DXF, or STEP with no header match: fall through to bbox-magnitude
	// estimation. The caller supplies maxDim for that in validate.
	return Resolution{Unit: Millimeter, Confidence: 0.2, Source: "default"}
}

// validate applies the bbox-plausibility check and override. When the
// initial resolution was the bare "default" fallback and maxDim is usable,
// it is first treated as a bbox-magnitude estimate at a fixed confidence of
// 0.4 and returned as-is: a magnitude-only guess doesn't get to claim the
// sharper confidence the range-fit formula produces for units that were
// already identified some other way.
func validate(r Resolution, maxDim float64) Resolution {
	if r.Source == "default" && maxDim > 0 {
		if u := bestFitByMagnitude(maxDim); u != Unknown {
			return Resolution{Unit: u, Confidence: 0.4, Source: "bbox-magnitude"}
		}
	}

	rg, ok := ranges[r.Unit]
	if !ok || maxDim <= 0 {
		return r
	}

	if maxDim >= rg.min && maxDim <= rg.max {
		conf := confidenceFromMagnitude(maxDim, rg.typical)
		if conf > r.Confidence {
			r.Confidence = conf
		}
		return r
	}

	// Out of range: try a neighboring unit.
	for _, cand := range neighbors[r.Unit] {
		crg, ok := ranges[cand]
		if !ok {
			continue
		}
		if maxDim >= crg.min && maxDim <= crg.max {
			return Resolution{
				Unit:       cand,
				Confidence: confidenceFromMagnitude(maxDim, crg.typical),
				Source:     "bbox-override",
			}
		}
	}

	return Resolution{Unit: r.Unit, Confidence: 0.1, Source: r.Source + "-unvalidated"}
}

func confidenceFromMagnitude(d, typical float64) float64 {
	c := 1 - math.Abs(math.Log10(d/typical))/2
	if c < 0.3 {
		c = 0.3
	}
	if c > 0.95 {
		c = 0.95
	}
	return c
}

// rangeOrder fixes the iteration order bestFitByMagnitude scores candidates
// in, so a tie always resolves to the same unit rather than to whichever
// the map happened to yield first.
var rangeOrder = []Unit{Millimeter, Centimeter, Meter, Inch, Foot}

// bestFitByMagnitude picks whichever unit's typical range best explains maxDim.
func bestFitByMagnitude(maxDim float64) Unit {
	best := Unknown
	bestScore := math.Inf(1)
	for _, u := range rangeOrder {
		rg := ranges[u]
		if maxDim < rg.min || maxDim > rg.max {
			continue
		}
		score := math.Abs(math.Log10(maxDim / rg.typical))
		if score < bestScore {
			bestScore = score
			best = u
		}
	}
	return best
}

//-----------------------------------------------------------------------------
