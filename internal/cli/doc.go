// Package cli defines the Cobra command tree for the bspy CLI. The root
// command creates a project; each other file registers one subcommand.
// Commands delegate to internal packages for business logic and only handle
// flag parsing, I/O formatting, and exit codes.
package cli
