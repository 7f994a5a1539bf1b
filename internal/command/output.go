package command

import (
	"strings"

	"github.com/mwrona/textops/internal/instruction"
)

type result int

const (
	undefined result = iota
	succeeded
	failed
)

// Output is the tri-state outcome of one command phase. The zero value is
// undefined, which the engine silently drops; OK and Err outputs reach the
// report only when their message is non-empty.
type Output struct {
	res result
	msg string
}

// OK builds a success output with the given message.
func OK(msg string) Output {
	return Output{res: succeeded, msg: msg}
}

// Err builds a failure output with the given message.
func Err(msg string) Output {
	return Output{res: failed, msg: msg}
}

// IsOK reports whether the output holds a success.
func (o Output) IsOK() bool {
	return o.res == succeeded
}

// IsErr reports whether the output holds a failure.
func (o Output) IsErr() bool {
	return o.res == failed
}

// IsUndefined reports whether the output carries no outcome at all.
func (o Output) IsUndefined() bool {
	return o.res == undefined
}

// Message returns the output's message text.
func (o Output) Message() string {
	return o.msg
}

// Tag prefixes msg with the bracketed name of the flag it concerns, the
// shape every per-flag report line uses.
func Tag(flag instruction.Flag, msg string) string {
	return "<" + flag.Name + "> " + msg
}

// List renders words as the report's brace block: `{ }` when empty,
// otherwise one quoted word per indented line with a trailing comma.
func List(flag instruction.Flag, words []string) string {
	if len(words) == 0 {
		return Tag(flag, "{ }")
	}

	var b strings.Builder
	b.WriteString(Tag(flag, "{\n"))
	for _, word := range words {
		b.WriteString("    \"")
		b.WriteString(word)
		b.WriteString("\",\n")
	}
	b.WriteString("}")
	return b.String()
}
