// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML and the environment, then builds the logger,
// backend registry, metrics collector and identity service, exposing them
// via the Wire struct for commands to use.
package app
