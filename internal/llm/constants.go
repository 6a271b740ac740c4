package llm

import "time"

// Shared transport constants for the provider clients.
const (
	defaultTimeout    = 120 * time.Second
	maxRetries        = 3
	initialRetryDelay = 2 * time.Second
)
