// Package command defines the contract between the dispatch engine and the
// flag handlers it drives: the Command interface with its two-phase
// validate/execute protocol, the tri-state Output both phases return, and
// the Operations context all handlers of one run share.
package command

import (
	"context"

	"github.com/mwrona/textops/internal/instruction"
)

// Command is a handler bound to exactly one flag identity, addressable by a
// short caller name and a long alias.
//
// Validate runs once per matched flag, in flag-position order, before any
// Execute runs. An error output aborts the whole run: the engine records the
// message, marks the run panicked, and touches no further flags. A non-error
// output queues the (command, flag) pair for execution. Validate is the only
// phase allowed to mutate the shared Operations or another flag's Mod field.
//
// Execute runs once per queued pair, in queue order, only when every
// validation succeeded. Error outputs here are recorded but non-fatal; the
// remaining queue still runs. Outputs with empty messages are dropped from
// the report regardless of state.
type Command interface {
	Caller() string
	Alias() string
	Validate(ctx context.Context, flag instruction.Flag, inst *instruction.Instruction, ops *Operations) Output
	Execute(ctx context.Context, flag instruction.Flag, ops *Operations) Output
}

// Operations is the mutable state shared by all commands during one engine
// run: the resolved source text, the input and output file paths, and the
// panic latch the engine sets on the first validation failure. A fresh value
// is created per run and discarded once the report is rendered.
type Operations struct {
	Source  string
	FileIn  string
	FileOut string

	Panicked bool
}
