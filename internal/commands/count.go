package commands

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/instruction"
	"github.com/mwrona/textops/internal/textutil"
)

// digitSet holds the characters CountDigits recognizes.
var digitSet = []byte("0123456789")

// CountLines reports how many newline characters the source text contains.
type CountLines struct{}

func (CountLines) Caller() string { return "-n" }
func (CountLines) Alias() string  { return "--newlines" }

func (CountLines) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (CountLines) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	count := strings.Count(ops.Source, "\n")
	ctxlog.FromContext(ctx).Debug("counted newlines", "flag", flag.Name, "count", count)

	return command.OK(command.Tag(flag, "New lines: "+strconv.Itoa(count)))
}

// CountDigits reports how many digit characters the source text contains,
// wherever they appear.
type CountDigits struct{}

func (CountDigits) Caller() string { return "-d" }
func (CountDigits) Alias() string  { return "--digits" }

func (CountDigits) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (c CountDigits) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	count := 0
	for i := 0; i < len(ops.Source); i++ {
		if c.isDigit(ops.Source[i]) {
			count++
		}
	}
	ctxlog.FromContext(ctx).Debug("counted digits", "flag", flag.Name, "count", count)

	return command.OK(command.Tag(flag, "Digits: "+strconv.Itoa(count)))
}

func (CountDigits) isDigit(ch byte) bool {
	return bytes.IndexByte(digitSet, ch) >= 0
}

// CountNumbers reports how many standalone numeric tokens the source text
// contains. Unlike CountDigits it ignores digits glued to other word
// characters; the two stay separate metrics.
type CountNumbers struct{}

func (CountNumbers) Caller() string { return "-dd" }
func (CountNumbers) Alias() string  { return "--numbers" }

func (CountNumbers) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (CountNumbers) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	count := textutil.CountNumbers(ops.Source)
	ctxlog.FromContext(ctx).Debug("counted numbers", "flag", flag.Name, "count", count)

	return command.OK(command.Tag(flag, "Numbers: "+strconv.Itoa(count)))
}

// CountChars reports the length of the loaded source text minus the
// trailing newline the loader appends.
type CountChars struct{}

func (CountChars) Caller() string { return "-c" }
func (CountChars) Alias() string  { return "--chars" }

func (CountChars) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (CountChars) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	count := len(ops.Source) - 1
	ctxlog.FromContext(ctx).Debug("counted chars", "flag", flag.Name, "count", count)

	return command.OK(command.Tag(flag, "Chars: "+strconv.Itoa(count)))
}

// CountWords reports how many whitespace-delimited words the source text
// contains.
type CountWords struct{}

func (CountWords) Caller() string { return "-w" }
func (CountWords) Alias() string  { return "--words" }

func (CountWords) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (CountWords) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	count := textutil.CountWords(ops.Source)
	ctxlog.FromContext(ctx).Debug("counted words", "flag", flag.Name, "count", count)

	return command.OK(command.Tag(flag, "Words: "+strconv.Itoa(count)))
}
