// Package cli is the composition root. It loads the settings file, builds
// the process logger, assembles the engine with every reporting command,
// and prints the rendered report. Process-level concerns live here so the
// engine and the commands stay free of them.
package cli
