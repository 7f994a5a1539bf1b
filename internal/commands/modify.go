package commands

import (
	"context"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/instruction"
)

// ConsiderLength switches the directly following sort flag to length-based
// comparison by setting its modifier. A chain of these flags is allowed;
// the last one in the chain performs the modification.
type ConsiderLength struct{}

func (ConsiderLength) Caller() string { return "-l" }
func (ConsiderLength) Alias() string  { return "--by-length" }

func (c ConsiderLength) Validate(_ context.Context, flag instruction.Flag, inst *instruction.Instruction, _ *command.Operations) command.Output {
	next := inst.ByPos(flag.Pos + 1)
	if next == nil {
		return command.Err(command.Tag(flag, "This flag can't be the last one!"))
	}

	if next.NameIn(c.Caller(), c.Alias()) {
		return command.OK("")
	}

	if !next.NameIn(sortedCaller, sortedAlias, reverseSortedCaller, reverseSortedAlias) {
		return command.Err(command.Tag(flag, "Missing required flag after this one!"))
	}

	next.Mod = 1

	return command.OK("")
}

func (ConsiderLength) Execute(context.Context, instruction.Flag, *command.Operations) command.Output {
	return command.OK("")
}
