//-----------------------------------------------------------------------------
/*

Error Kinds

Fatal error kinds surfaced to the analyzer's caller.
EstimatorSkipped is the one non-fatal kind: estimators return it as a
plain error value to their caller within internal/length, which
recovers locally and simply excludes the estimator from selection.

*/
//-----------------------------------------------------------------------------

package analyzeerr

import "fmt"

//-----------------------------------------------------------------------------

// UnsupportedFormat means the file extension is not in the decoder's allowed set.
type UnsupportedFormat struct {
	Ext string
}

func (e *UnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Ext)
}

// DecodeFailure means the underlying tessellator/parser reported failure
// or produced zero geometry.
type DecodeFailure struct {
	Msg string
}

func (e *DecodeFailure) Error() string {
	return fmt.Sprintf("decode failure: %s", e.Msg)
}

// EmptyGeometry means the decoded MeshSet has no vertices at all.
type EmptyGeometry struct{}

func (e *EmptyGeometry) Error() string {
	return "empty geometry: decoded mesh set has no vertices"
}

// EstimatorSkipped means a single length or bend estimator could not run
// (too few samples, a degenerate axis, insufficient medial points, a
// numerical edge case). Non-fatal: the caller excludes the estimator and
// continues with the others.
type EstimatorSkipped struct {
	Estimator string
	Reason    string
}

func (e *EstimatorSkipped) Error() string {
	return fmt.Sprintf("%s skipped: %s", e.Estimator, e.Reason)
}

//-----------------------------------------------------------------------------
