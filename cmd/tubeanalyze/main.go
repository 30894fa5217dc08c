//-----------------------------------------------------------------------------
/*

Analyze a single CAD file (STEP/IGES/DXF) and print its centerline
length, bend count, and cut count. STEP/IGES tessellation is an external
collaborator this binary does not wire in by default: STEP/IGES input
will fail with a DecodeFailure, while DXF input still succeeds.

*/
//-----------------------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cadmetrics/tubeanalyzer/analyzer"
	"github.com/cadmetrics/tubeanalyzer/internal/decode"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	"github.com/cadmetrics/tubeanalyzer/internal/svgdebug"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

//-----------------------------------------------------------------------------

func main() {
	svgOut := flag.String("svg", "", "optional path to write a debug top-down SVG")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tubeanalyze [-svg out.svg] <part.step|.iges|.dxf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("error: %s", err)
	}

	// No native/WASM tessellator is wired in by default; DXF input needs
	// none, STEP/IGES input will fail with DecodeFailure until an
	// embedding application supplies one via analyzer.New.
	a := analyzer.New(nil)

	result, err := a.Analyze(decode.File{Name: filepath.Base(path), Data: data})
	if err != nil {
		log.Fatalf("error: %s", err)
	}

	fmt.Printf("length:     %.2f mm\n", result.TotalLengthMM)
	fmt.Printf("bends:      %d\n", result.EstimatedBends)
	fmt.Printf("cuts:       %d\n", result.EstimatedCuts)
	fmt.Printf("units:      %s (confidence %.2f)\n", result.OriginalUnits, result.UnitConfidence)
	fmt.Printf("method:     %s (confidence %.2f)\n", result.LengthMethod, result.LengthConfidence)
	for _, d := range result.Diagnostics {
		fmt.Printf("diagnostic: %s\n", d)
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			log.Fatalf("error: %s", err)
		}
		defer f.Close()
		svgdebug.WriteTopDown(f, boxFromResult(result), nil)
	}
}

//-----------------------------------------------------------------------------

func boxFromResult(r analyzer.AnalysisResult) meshtypes.Box3 {
	return meshtypes.Box3{
		Min: v3.Vec{X: r.BoundingBox.Min.X, Y: r.BoundingBox.Min.Y, Z: r.BoundingBox.Min.Z},
		Max: v3.Vec{X: r.BoundingBox.Max.X, Y: r.BoundingBox.Max.Y, Z: r.BoundingBox.Max.Z},
	}
}

//-----------------------------------------------------------------------------
