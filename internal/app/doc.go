// Package app contains the core application logic. It defines the App struct,
// its configuration, and the print lifecycle, decoupled from the CLI
// entrypoint that produces the parsed arguments.
package app
