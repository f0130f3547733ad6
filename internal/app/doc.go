// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle (load the
// input table, load the pipeline, evaluate, write the result), decoupled
// from any specific entrypoint like a CLI.
package app
