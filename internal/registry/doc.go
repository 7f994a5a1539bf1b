// Package registry stores the commands available to one engine instance.
//
// Every command is reachable under two names, a short caller (`-w`) and a
// long alias (`--words`), and the registry answers lookups for either.
// Entries keep registration order, which makes lookup deterministic if two
// commands ever shared a name; registration itself prevents that case by
// silently ignoring a command whose caller and alias are both taken.
package registry
