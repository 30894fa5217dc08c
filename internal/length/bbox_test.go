package length

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func box(dx, dy, dz float64) meshtypes.Box3 {
	return meshtypes.Box3{Min: v3.Vec{}, Max: v3.Vec{X: dx, Y: dy, Z: dz}}
}

func TestBBoxFallbackSlenderTube(t *testing.T) {
	r := BBoxFallback(box(100, 5, 5))
	assert.True(t, r.OK)
	assert.Equal(t, 100.0, r.Length)
	assert.Equal(t, 0.5, r.Confidence)
}

func TestBBoxFallbackCubeLikePenalized(t *testing.T) {
	r := BBoxFallback(box(10, 8, 8))
	assert.True(t, r.OK)
	assert.Greater(t, r.Length, 10.0)
	assert.Equal(t, 0.2, r.Confidence)
}

func TestBBoxFallbackDegenerateFails(t *testing.T) {
	r := BBoxFallback(box(0, 0, 0))
	assert.False(t, r.OK)
}
