package configs

import "time"

// HTTP defines tuning for the HTTP server. The bind address is not part of
// this struct; it is produced by config.ResolveAddress from several
// candidate sources.
type HTTP struct {
	// ReadHeaderTimeout bounds how long the server waits for request
	// headers. Defaults to 10s.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	// Defaults to 5s.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
