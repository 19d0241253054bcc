// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as the
// initial database ping and HTTP server drain.
const DefaultTimeout = 10 * time.Second
