// Package lifecycle holds process-wide start/stop constants.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (database ping) and graceful shutdown of servers.
const DefaultTimeout = 15 * time.Second
