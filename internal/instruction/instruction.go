// Package instruction models one batch of raw command-line input as an
// ordered sequence of flags. The parser is deliberately forgiving: anything
// that does not belong to a flag is dropped rather than rejected, and all
// judgement about whether a flag makes sense is left to the command layer.
package instruction

// Flag is one recognized unit of user input: the literal token that opened
// it (short or long form), the space-joined argument text that followed, and
// the flag's 0-based position among flags only.
//
// Mod is a behavior modifier, zero by default. It is never set by the parser;
// a command may set it on another flag during validation to alter that
// flag's own execution (the by-length sort switch does this).
type Flag struct {
	Name string
	Arg  string
	Pos  int
	Mod  int
}

// NameIn reports whether the flag was spelled as any of the given names.
func (f Flag) NameIn(names ...string) bool {
	for _, name := range names {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Instruction is the ordered collection of all flags parsed from one input
// batch. It is created once per engine run and stays append-free afterwards;
// the only permitted mutation is through ByPos, which commands use to adjust
// another flag's Mod field.
type Instruction struct {
	flags []Flag
}

// Flags returns the parsed flags in position order. The slice is shared with
// the instruction, so Mod updates made through ByPos are visible to callers
// that have not yet reached the flag.
func (in *Instruction) Flags() []Flag {
	return in.flags
}

// Len returns the number of parsed flags.
func (in *Instruction) Len() int {
	return len(in.flags)
}

// ByName returns the first flag whose name matches.
func (in *Instruction) ByName(name string) (Flag, bool) {
	for _, f := range in.flags {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// ByPos returns a pointer to the flag at the given position, or nil when no
// such flag exists. The pointer aliases the instruction's storage: writing
// Mod through it is how one command re-tunes a later one.
func (in *Instruction) ByPos(pos int) *Flag {
	for i := range in.flags {
		if in.flags[i].Pos == pos {
			return &in.flags[i]
		}
	}
	return nil
}

// HasAny reports whether any flag in the instruction was spelled as one of
// the given names.
func (in *Instruction) HasAny(names ...string) bool {
	for _, f := range in.flags {
		if f.NameIn(names...) {
			return true
		}
	}
	return false
}
