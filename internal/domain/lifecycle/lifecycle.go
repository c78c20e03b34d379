// Package lifecycle holds shared lifecycle settings for servers and clients.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks.
const DefaultTimeout = 10 * time.Second
