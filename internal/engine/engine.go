package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/fsutil"
	"github.com/mwrona/textops/internal/instruction"
	"github.com/mwrona/textops/internal/registry"
	"github.com/mwrona/textops/internal/textutil"
)

// Engine turns one batch of raw argument tokens into a report. It owns the
// command registry, the outputs collected during a run, and the operation
// state shared by every command.
type Engine struct {
	commands   *registry.Registry
	outputs    []command.Output
	operations command.Operations
}

// queued is a (command, flag) pair that passed validation and waits for
// the execution phase.
type queued struct {
	cmd  command.Command
	flag instruction.Flag
}

// New returns an Engine carrying the built-in identity commands. Reporting
// commands are attached with Add.
func New() *Engine {
	e := &Engine{
		commands: registry.New(),
	}

	e.Add(sourceFile{}).
		Add(inputFile{}).
		Add(outputFile{})

	return e
}

// Add registers a reporting command and returns the engine for chaining.
// A command whose names are already taken is silently ignored, so chained
// Add calls need no duplicate guards.
func (e *Engine) Add(cmd command.Command) *Engine {
	e.commands.Add(cmd)
	return e
}

// Execute parses the raw tokens and runs the full protocol: the
// input-redirect check, the validate phase over every flag, the source
// check, and the execute phase over the validated pairs. It returns the
// rendered report, or an empty string when the report went to a file.
func (e *Engine) Execute(ctx context.Context, rawArgs []string) string {
	logger := ctxlog.FromContext(ctx).With("run_id", uuid.New().String())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("run started", "tokens", len(rawArgs))

	inst := instruction.Parse(rawArgs)

	inst, ok := e.redirectInput(ctx, inst)
	if !ok {
		return e.report(ctx)
	}

	validated := e.validate(ctx, &inst)

	// Runs after the validate phase even when it already failed, so a
	// missing source stacks onto whatever error stopped validation.
	if e.operations.FileIn == "" && e.operations.Source == "" {
		e.record(command.Err("<ENGINE> Source file is invalid!"))
		e.operations.Panicked = true
	}

	if e.operations.Panicked {
		logger.Debug("run aborted during validation")
		return e.report(ctx)
	}

	e.execute(ctx, validated)

	return e.report(ctx)
}

// redirectInput enforces the redirect rules when the input flag is
// present: it must be the only flag and must name an existing file. On
// success the returned instruction is re-parsed from that file's words.
func (e *Engine) redirectInput(ctx context.Context, inst instruction.Instruction) (instruction.Instruction, bool) {
	in := inputFile{}
	if !inst.HasAny(in.Caller(), in.Alias()) {
		return inst, true
	}

	if inst.Len() != 1 {
		e.record(command.Err("<ENGINE> Input file flag should be the only one!"))
		return inst, false
	}

	flag := inst.ByPos(0)
	if flag.Arg == "" {
		e.record(command.Err("<ENGINE> Input file flag requires an argument!"))
		return inst, false
	}

	if !fsutil.Exists(flag.Arg) {
		e.record(command.Err("<ENGINE> Input file flag has invalid file as an argument!"))
		return inst, false
	}

	content, err := fsutil.ReadText(flag.Arg)
	if err != nil {
		e.record(command.Err("<ENGINE> Input file flag has invalid file as an argument!"))
		return inst, false
	}

	ctxlog.FromContext(ctx).Debug("replaying flags from input file", "path", flag.Arg)

	return instruction.Parse(textutil.Words(content)), true
}

// validate resolves each flag to a command by caller then alias and runs
// its validate phase. The first failure stops the pass; everything that
// passed before it is returned in flag order.
func (e *Engine) validate(ctx context.Context, inst *instruction.Instruction) []queued {
	logger := ctxlog.FromContext(ctx)
	validated := make([]queued, 0, inst.Len())

	for pos := 0; pos < inst.Len(); pos++ {
		flag := *inst.ByPos(pos)

		cmd, ok := e.commands.ByCaller(flag.Name)
		if !ok {
			cmd, ok = e.commands.ByAlias(flag.Name)
		}
		if !ok {
			e.record(command.Err("<ENGINE> Invalid flag: [" + flag.Name + "]"))
			e.operations.Panicked = true
			break
		}

		out := cmd.Validate(ctx, flag, inst, &e.operations)
		if out.IsErr() {
			logger.Debug("flag failed validation", "flag", flag.Name, "message", out.Message())
			e.record(out)
			e.operations.Panicked = true
			break
		}

		logger.Debug("flag validated", "flag", flag.Name, "position", flag.Pos)
		validated = append(validated, queued{cmd: cmd, flag: flag})
	}

	return validated
}

// execute runs the queued pairs in order. Failures are recorded like any
// other result and never stop the remaining commands.
func (e *Engine) execute(ctx context.Context, validated []queued) {
	logger := ctxlog.FromContext(ctx)

	for _, q := range validated {
		out := q.cmd.Execute(ctx, q.flag, &e.operations)
		if out.Message() == "" {
			continue
		}

		if out.IsErr() {
			logger.Debug("flag failed execution", "flag", q.flag.Name, "message", out.Message())
		}
		e.record(out)
	}
}

func (e *Engine) record(out command.Output) {
	e.outputs = append(e.outputs, out)
}

// report renders every collected output as one tagged line. With an output
// file selected the report is written there, the engine keeps its state,
// and the caller gets an empty string; otherwise the engine resets for the
// next run and the report is returned.
func (e *Engine) report(ctx context.Context) string {
	var sb strings.Builder

	for _, out := range e.outputs {
		msg := out.Message()
		if msg == "" {
			continue
		}

		tag := "[ERROR]"
		if out.IsOK() {
			tag = "[SUCCESS]"
		}

		sb.WriteString(tag)
		sb.WriteString(": ")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	if e.operations.FileOut != "" {
		if err := fsutil.WriteText(e.operations.FileOut, sb.String()); err != nil {
			ctxlog.FromContext(ctx).Error("writing the report failed", "path", e.operations.FileOut, "error", err)
		}
		return ""
	}

	e.reset()

	return sb.String()
}

// reset clears the collected outputs and the shared operation state.
func (e *Engine) reset() {
	e.outputs = nil
	e.operations = command.Operations{}
}
