// Package app contains the application lifecycle. It wires configuration,
// logging, document loading and the translation engine together, decoupled
// from any specific entrypoint like a CLI.
package app
