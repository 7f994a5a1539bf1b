// Package commands contains the reporting commands an engine can be
// extended with: source text counters, word views, and the sort modifier.
package commands
