// Package lifecycle holds shared timing values for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks.
const DefaultTimeout = 10 * time.Second
