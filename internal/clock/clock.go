package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns NowFunc in UTC without the monotonic reading, so values compare
// equal after a round trip through any codec.
func Now() time.Time { return NowFunc().UTC().Round(0) }
