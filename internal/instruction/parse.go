package instruction

import "strings"

// Parse scans tokens left to right and groups them into flags. A token
// starting with '-' opens a new flag; every following non-flag token is
// appended to that flag's argument, joined by single spaces. Tokens seen
// before the first flag are discarded, empty tokens are skipped, and a flag
// with nothing after it keeps an empty argument. Positions are assigned
// densely in encounter order starting at 0.
func Parse(tokens []string) Instruction {
	var (
		flags []Flag
		cur   Flag
		open  bool
		pos   int
	)

	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		if strings.HasPrefix(tok, "-") {
			if open {
				flags = append(flags, sealed(cur))
			}
			cur = Flag{Name: tok, Pos: pos}
			pos++
			open = true
			continue
		}

		if open {
			cur.Arg += tok + " "
		}
	}

	if open {
		flags = append(flags, sealed(cur))
	}

	return Instruction{flags: flags}
}

// sealed trims the single trailing space the accumulation loop leaves behind.
func sealed(f Flag) Flag {
	f.Arg = strings.TrimSuffix(f.Arg, " ")
	return f
}
