// Package lifecycle holds shared process-lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// components such as the HTTP server and the database pool.
const DefaultTimeout = 10 * time.Second
