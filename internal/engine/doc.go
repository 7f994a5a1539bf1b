// Package engine drives a parsed flag instruction through the two-phase
// command protocol: every flag is validated against the registered commands
// first, then the validated ones execute in position order and their
// results are aggregated into a single report.
//
// A validation failure aborts the whole run before anything executes;
// execution failures are recorded and the remaining commands still run.
package engine
