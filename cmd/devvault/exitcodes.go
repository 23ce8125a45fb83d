package main

// Exit codes. Handled conditions (not found, empty vault, rejected input,
// cancelled delete) exit with ExitSuccess.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, malformed ID)
	ExitConfigError = 2 // Configuration error (unreadable config, bad color mode)
	ExitDataError   = 3 // Data error (vault unreadable, malformed, or not writable)
)
