package dxfdebug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func TestWriteCenterlineCreatesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "centerline.dxf")
	polyline := []v3.Vec{{X: 0}, {X: 10}, {X: 20, Y: 5}}

	err := WriteCenterline(out, polyline)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteCenterlineSinglePointWritesEmptyDrawing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "centerline.dxf")
	err := WriteCenterline(out, []v3.Vec{{}})
	require.NoError(t, err)
}
