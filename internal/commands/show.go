package commands

import (
	"context"
	"strconv"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/fsutil"
	"github.com/mwrona/textops/internal/instruction"
	"github.com/mwrona/textops/internal/textutil"
)

const (
	sortedCaller        = "-s"
	sortedAlias         = "--sorted"
	reverseSortedCaller = "-rs"
	reverseSortedAlias  = "--reverse-sorted"
)

// sizeUnits holds the unit labels ShowFileSize scales through.
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// ShowAnagrams lists the distinct source words that are anagrams of any
// word in the flag argument. Because the argument swallows every following
// token, the flag has to be the last one.
type ShowAnagrams struct{}

func (ShowAnagrams) Caller() string { return "-a" }
func (ShowAnagrams) Alias() string  { return "--anagrams" }

func (ShowAnagrams) Validate(_ context.Context, flag instruction.Flag, inst *instruction.Instruction, _ *command.Operations) command.Output {
	return validateReferenceFlag(flag, inst)
}

func (ShowAnagrams) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	matches := textutil.DistinctMatches(
		textutil.Words(ops.Source),
		textutil.Words(flag.Arg),
		textutil.AreAnagrams,
	)
	ctxlog.FromContext(ctx).Debug("matched anagrams", "flag", flag.Name, "count", len(matches))

	return command.OK(command.List(flag, matches))
}

// ShowPalindromes lists the distinct source words that read as some word
// in the flag argument reversed. Same trailing-position rule as
// ShowAnagrams.
type ShowPalindromes struct{}

func (ShowPalindromes) Caller() string { return "-p" }
func (ShowPalindromes) Alias() string  { return "--palindromes" }

func (ShowPalindromes) Validate(_ context.Context, flag instruction.Flag, inst *instruction.Instruction, _ *command.Operations) command.Output {
	return validateReferenceFlag(flag, inst)
}

func (ShowPalindromes) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	matches := textutil.DistinctMatches(
		textutil.Words(ops.Source),
		textutil.Words(flag.Arg),
		textutil.ArePalindromes,
	)
	ctxlog.FromContext(ctx).Debug("matched palindromes", "flag", flag.Name, "count", len(matches))

	return command.OK(command.List(flag, matches))
}

// validateReferenceFlag checks the shared rules of the commands comparing
// source words against a reference list: the flag must close the
// instruction and must carry the reference words as its argument.
func validateReferenceFlag(flag instruction.Flag, inst *instruction.Instruction) command.Output {
	if inst.ByPos(flag.Pos+1) != nil {
		return command.Err(command.Tag(flag, "This flag should be the last one"))
	}

	if flag.Arg == "" {
		return command.Err(command.Tag(flag, "This flag requires an argument!"))
	}

	return command.OK("")
}

// ShowWords lists every source word in ascending order, by value or by
// length when the flag was modified.
type ShowWords struct{}

func (ShowWords) Caller() string { return sortedCaller }
func (ShowWords) Alias() string  { return sortedAlias }

func (ShowWords) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (ShowWords) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	words := textutil.SortWords(textutil.Words(ops.Source), flag.Mod == 1)
	ctxlog.FromContext(ctx).Debug("sorted words", "flag", flag.Name, "byLength", flag.Mod == 1, "count", len(words))

	return command.OK(command.List(flag, words))
}

// ShowWordsReverse lists every source word in descending order, by value
// or by length when the flag was modified.
type ShowWordsReverse struct{}

func (ShowWordsReverse) Caller() string { return reverseSortedCaller }
func (ShowWordsReverse) Alias() string  { return reverseSortedAlias }

func (ShowWordsReverse) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (ShowWordsReverse) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	words := textutil.SortWordsReverse(textutil.Words(ops.Source), flag.Mod == 1)
	ctxlog.FromContext(ctx).Debug("sorted words in reverse", "flag", flag.Name, "byLength", flag.Mod == 1, "count", len(words))

	return command.OK(command.List(flag, words))
}

// ShowFileSize reports the source file size scaled to the largest unit
// that keeps the value under 1000, rounded to two decimals.
type ShowFileSize struct{}

func (ShowFileSize) Caller() string { return "-si" }
func (ShowFileSize) Alias() string  { return "--size" }

func (ShowFileSize) Validate(context.Context, instruction.Flag, *instruction.Instruction, *command.Operations) command.Output {
	return command.OK("")
}

func (ShowFileSize) Execute(ctx context.Context, flag instruction.Flag, ops *command.Operations) command.Output {
	size, err := fsutil.Size(ops.FileIn)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("source file size unavailable", "flag", flag.Name, "path", ops.FileIn, "error", err)
		return command.Err(command.Tag(flag, "Can't read the source file size!"))
	}

	value := float64(size)
	unit := ""
	for _, u := range sizeUnits {
		if value < 1000 {
			unit = u
			break
		}
		value /= 1000
	}

	value = float64(int64(value*100+0.5)) / 100
	ctxlog.FromContext(ctx).Debug("scaled file size", "flag", flag.Name, "bytes", size, "value", value, "unit", unit)

	return command.OK(command.Tag(flag, strconv.FormatFloat(value, 'g', -1, 64)+" "+unit))
}
