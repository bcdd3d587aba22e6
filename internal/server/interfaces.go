package server

// Server runs the web front-end until the process receives SIGINT or SIGTERM.
type Server interface {
	// RunServer listens on the configured address and blocks until a
	// shutdown signal arrives or the listener fails. A listener failure is
	// returned.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
