package engine

import (
	"context"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/fsutil"
	"github.com/mwrona/textops/internal/instruction"
)

// The identity commands below are registered by New on every engine and
// cannot be replaced: registration of another command reusing their names
// is ignored.

// sourceFile resolves the text every reporting command operates on. Its
// validate phase checks the path argument, loads the file eagerly, and
// stores both on the shared operation state.
type sourceFile struct{}

func (sourceFile) Caller() string { return "-f" }
func (sourceFile) Alias() string  { return "--file" }

func (sourceFile) Validate(ctx context.Context, flag instruction.Flag, _ *instruction.Instruction, ops *command.Operations) command.Output {
	if flag.Arg == "" {
		return command.Err(command.Tag(flag, "This flag requires an argument!"))
	}

	if !fsutil.Exists(flag.Arg) {
		return command.Err(command.Tag(flag, "Provided file doesn't exists!"))
	}

	content, err := fsutil.ReadText(flag.Arg)
	if err != nil {
		return command.Err(command.Tag(flag, "Provided file doesn't exists!"))
	}

	ops.FileIn = flag.Arg
	ops.Source = content
	ctxlog.FromContext(ctx).Debug("loaded source file", "path", flag.Arg, "bytes", len(content))

	return command.OK("")
}

func (sourceFile) Execute(context.Context, instruction.Flag, *command.Operations) command.Output {
	return command.OK("")
}

// inputFile is purely declarative. The engine detects it by name before
// validation and replays the flags stored in the named file; both phases
// are no-ops.
type inputFile struct{}

func (inputFile) Caller() string { return "-i" }
func (inputFile) Alias() string  { return "--input" }

func (inputFile) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (inputFile) Execute(context.Context, instruction.Flag, *command.Operations) command.Output {
	return command.OK("")
}

// outputFile records the destination the report should be written to
// instead of being returned to the caller.
type outputFile struct{}

func (outputFile) Caller() string { return "-o" }
func (outputFile) Alias() string  { return "--output" }

func (outputFile) Validate(_ context.Context, flag instruction.Flag, _ *instruction.Instruction, ops *command.Operations) command.Output {
	if flag.Arg == "" {
		return command.Err(command.Tag(flag, "This flag requires an argument!"))
	}

	ops.FileOut = flag.Arg

	return command.OK("")
}

func (outputFile) Execute(context.Context, instruction.Flag, *command.Operations) command.Output {
	return command.OK("")
}
