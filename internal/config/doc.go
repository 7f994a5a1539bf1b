// Package config loads the tool settings: an optional HCL file resolved
// from TEXTOPS_CONFIG or the working directory, with single-value
// environment overrides applied on top.
//
// Settings shape logging and report presentation only. They never affect
// the content of a report.
package config
