// Package app wires the application together: it owns the logger, loads the
// run configuration and prior tables, executes injection jobs, and hosts the
// optional HTTP endpoint that exposes loaded tables to an external sampler
// driver.
package app
