//-----------------------------------------------------------------------------
/*

Analyzer

Top-level orchestration wiring the Decoder Adapter, Unit Resolver,
Geometry Prep, Length Estimator, Bend Analyzer, and Output Assembler into
a single pure-ish pipeline step. The only I/O is the single blocking
decode inside the Decoder Adapter; everything downstream of that is
synchronous, in-memory computation.

*/
//-----------------------------------------------------------------------------

package analyzer

import (
	"github.com/cadmetrics/tubeanalyzer/internal/assembler"
	"github.com/cadmetrics/tubeanalyzer/internal/bend"
	"github.com/cadmetrics/tubeanalyzer/internal/decode"
	"github.com/cadmetrics/tubeanalyzer/internal/geomprep"
	"github.com/cadmetrics/tubeanalyzer/internal/length"
	"github.com/cadmetrics/tubeanalyzer/internal/units"
)

//-----------------------------------------------------------------------------

// AnalysisResult re-exports the Output Assembler's contract as this
// package's public return type, so callers never need to import
// internal/assembler directly.
type AnalysisResult = assembler.AnalysisResult

// Analyzer holds the single injected Tessellator dependency used for
// STEP/IGES decoding, in place of a module-wide tessellator singleton.
type Analyzer struct {
	adapter *decode.Adapter
}

// New builds an Analyzer around the given boundary-representation
// tessellator. tess may be nil if only DXF files will ever be analyzed.
func New(tess decode.Tessellator) *Analyzer {
	return &Analyzer{adapter: decode.NewAdapter(tess)}
}

// Analyze runs the full pipeline against one input file: decode, resolve
// units, prepare geometry, estimate length, analyze bends, and assemble
// the output contract.
func (a *Analyzer) Analyze(f decode.File) (AnalysisResult, error) {
	decoded, err := a.adapter.Decode(f)
	if err != nil {
		return AnalysisResult{}, err
	}

	prepared := geomprep.Prepare(decoded.Meshes)

	resolution := units.Resolve(metadataSourceFrom(decoded), prepared.BBox.Size().MaxComponent())

	sel := length.Select(prepared.Analysis, prepared.BBox)
	bendResult := bend.Analyze(prepared.Analysis, prepared.BBox)

	diagnostics := append([]string{}, sel.Diagnostics...)

	return assembler.Assemble(sel, bendResult, resolution, prepared.BBox, diagnostics), nil
}

//-----------------------------------------------------------------------------

func metadataSourceFrom(d *decode.Decoded) units.MetadataSource {
	src := units.MetadataSource{
		IsSTEP:    d.IsSTEP,
		IsDXF:     d.IsDXF,
		RawPrefix: d.RawPrefix,
	}
	if d.Metadata != nil {
		src.Units = d.Metadata.Units
		src.LengthUnit = d.Metadata.LengthUnit
		if d.Metadata.Metadata != nil {
			src.MetadataUnits = d.Metadata.Metadata["units"]
		}
	}
	return src
}
