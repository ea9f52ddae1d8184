// Package timeouts defines the shared timeouts of the Pathway service.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// Nonce is the lifetime of an ajax authenticity token.
const Nonce = 24 * time.Hour

// StoreOperation caps a single flag store read or write.
const StoreOperation = 2 * time.Second
