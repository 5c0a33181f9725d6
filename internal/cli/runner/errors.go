// Package runner provides an interceptor-based command execution framework
// for CLI commands, mirroring the middleware pattern of RPC interceptors
// (request -> chain of cross-cutting concerns -> handler).
package runner

import "errors"

// ErrNoConfig is returned when a command requires the CLI default-settings
// config to be loaded but it failed to load.
var ErrNoConfig = errors.New("horcrux config could not be loaded")
