//-----------------------------------------------------------------------------
/*

Decoder Adapter — File Dispatch

File-type selection by lowercased filename extension, and uniform
presentation of (MeshSet, MetadataBag, RawPrefix) to the rest of the
pipeline. STEP/IGES decoding is non-reentrant whenever the injected
Tessellator wraps a native kernel, so Adapter serializes access behind
a mutex rather than assuming the kernel is safe for concurrent use.

*/
//-----------------------------------------------------------------------------

package decode

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

// rawPrefixSize is how much of the file's leading bytes are kept as text
// for STEP header scanning; the unit scan must stay O(1) in file size.
const rawPrefixSize = 8192

// maxInputBytes is the upper bound enforced by the surrounding service
// before a file ever reaches the adapter; re-checked here defensively.
const maxInputBytes = 50 * 1024 * 1024

// File is an input file identity: its bytes and its (client-supplied) name.
type File struct {
	Name string
	Data []byte
}

// Decoded is everything the rest of the pipeline needs from one decoded file.
type Decoded struct {
	Meshes    *meshtypes.MeshSet
	Metadata  *meshtypes.MetadataBag
	RawPrefix string
	IsSTEP    bool
	IsDXF     bool
}

// Adapter dispatches a File to the decoder for its format and returns a
// uniform Decoded result.
type Adapter struct {
	tess Tessellator
	mu   sync.Mutex
}

// NewAdapter builds an Adapter around the given boundary-representation
// tessellator. tess may be nil if only DXF input will ever be decoded.
func NewAdapter(tess Tessellator) *Adapter {
	return &Adapter{tess: tess}
}

// allowedExt is the closed set of extensions the adapter accepts.
var allowedExt = map[string]bool{
	".step": true, ".stp": true,
	".iges": true, ".igs": true,
	".dxf": true,
}

// Decode dispatches f by its lowercased extension and returns its decoded
// geometry, or an UnsupportedFormat/DecodeFailure/EmptyGeometry error.
func (a *Adapter) Decode(f File) (*Decoded, error) {
	if len(f.Data) > maxInputBytes {
		return nil, &analyzeerr.DecodeFailure{Msg: "input exceeds 50 MiB bound"}
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	if !allowedExt[ext] {
		return nil, &analyzeerr.UnsupportedFormat{Ext: ext}
	}

	prefix := f.Data
	if len(prefix) > rawPrefixSize {
		prefix = prefix[:rawPrefixSize]
	}

	isSTEP := ext == ".step" || ext == ".stp"
	isDXF := ext == ".dxf"

	var (
		meshes *meshtypes.MeshSet
		meta   *meshtypes.MetadataBag
		err    error
	)

	// STEP/IGES tessellator kernels are typically not reentrant.
	a.mu.Lock()
	switch {
	case isDXF:
		meshes, meta, err = decodeDXF(f.Data)
	default: // .step, .stp, .iges, .igs
		if a.tess == nil {
			err = &analyzeerr.DecodeFailure{Msg: "no tessellator configured for " + ext}
		} else {
			meshes, meta, err = decodeBRep(f.Data, a.tess)
		}
	}
	a.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if meshes.Empty() {
		return nil, &analyzeerr.EmptyGeometry{}
	}

	return &Decoded{
		Meshes:    meshes,
		Metadata:  meta,
		RawPrefix: string(prefix),
		IsSTEP:    isSTEP,
		IsDXF:     isDXF,
	}, nil
}

//-----------------------------------------------------------------------------
