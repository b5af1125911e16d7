// Package lifecycle holds shared timeouts for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop work such as pinging the database or
// draining the HTTP server.
const DefaultTimeout = 15 * time.Second
