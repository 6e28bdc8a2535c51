package panel

import "errors"

// ErrDegenerateViewport is returned by consumers that cannot produce output
// for a viewport without area, such as image exporters. The panel itself
// never fails on one.
var ErrDegenerateViewport = errors.New("panel: viewport has no drawable area")
