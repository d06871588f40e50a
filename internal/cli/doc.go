// Package cli is responsible for parsing command-line arguments and handling
// process-level concerns like exit codes. It translates the invocation into
// the model.Arguments record the app prints.
package cli
