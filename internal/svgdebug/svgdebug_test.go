package svgdebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func TestWriteTopDownProducesSVGDocument(t *testing.T) {
	bb := meshtypes.Box3{Min: v3.Vec{}, Max: v3.Vec{X: 100, Y: 20, Z: 20}}
	centerline := []v3.Vec{{X: 0}, {X: 50, Y: 5}, {X: 100, Y: 0}}

	var buf bytes.Buffer
	WriteTopDown(&buf, bb, centerline)

	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.Contains(out, "polyline"))
}

func TestWriteTopDownHandlesEmptyCenterline(t *testing.T) {
	bb := meshtypes.Box3{Min: v3.Vec{}, Max: v3.Vec{X: 10, Y: 10, Z: 10}}

	var buf bytes.Buffer
	WriteTopDown(&buf, bb, nil)

	assert.True(t, strings.Contains(buf.String(), "<svg"))
}
