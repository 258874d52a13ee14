package ports

import "time"

// Clock supplies the single "current time" read each operation is
// allowed; injecting it keeps validation windows deterministic under
// test.
type Clock interface {
	Now() time.Time
}
