package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwrona/textops/internal/command"
	"github.com/mwrona/textops/internal/instruction"
)

func TestReferenceFlags_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		tokens      []string
		expectedErr string
	}{
		{
			name:        "must be the last flag",
			tokens:      []string{"FLAG", "kot", "-w"},
			expectedErr: "This flag should be the last one",
		},
		{
			name:        "requires an argument",
			tokens:      []string{"-f", "in.txt", "FLAG"},
			expectedErr: "This flag requires an argument!",
		},
		{
			name:   "last with argument",
			tokens: []string{"-f", "in.txt", "FLAG", "kot", "tok"},
		},
	}

	for _, cmd := range []command.Command{ShowAnagrams{}, ShowPalindromes{}} {
		for _, tc := range testCases {
			t.Run(cmd.Caller()+" "+tc.name, func(t *testing.T) {
				t.Parallel()

				tokens := make([]string, len(tc.tokens))
				for i, tok := range tc.tokens {
					if tok == "FLAG" {
						tok = cmd.Caller()
					}
					tokens[i] = tok
				}

				inst := instruction.Parse(tokens)
				flag, ok := inst.ByName(cmd.Caller())
				require.True(t, ok)

				out := cmd.Validate(context.Background(), flag, &inst, &command.Operations{})

				if tc.expectedErr == "" {
					require.True(t, out.IsOK())
					return
				}

				require.True(t, out.IsErr())
				require.Equal(t, "<"+cmd.Caller()+"> "+tc.expectedErr, out.Message())
			})
		}
	}
}

func TestShowAnagrams_Execute(t *testing.T) {
	t.Parallel()

	flag := instruction.Flag{Name: "-a", Arg: "kto", Pos: 1}
	ops := &command.Operations{Source: "kot tok kot ala\n"}

	out := ShowAnagrams{}.Execute(context.Background(), flag, ops)

	require.True(t, out.IsOK())
	require.Equal(t, "<-a> {\n    \"kot\",\n    \"tok\",\n}", out.Message())
}

func TestShowAnagrams_ExecuteNoMatches(t *testing.T) {
	t.Parallel()

	flag := instruction.Flag{Name: "-a", Arg: "xyz", Pos: 1}
	ops := &command.Operations{Source: "kot tok\n"}

	out := ShowAnagrams{}.Execute(context.Background(), flag, ops)

	require.True(t, out.IsOK())
	require.Equal(t, "<-a> { }", out.Message())
}

func TestShowPalindromes_Execute(t *testing.T) {
	t.Parallel()

	flag := instruction.Flag{Name: "-p", Arg: "oko cba", Pos: 1}
	ops := &command.Operations{Source: "kajak oko abc oko\n"}

	out := ShowPalindromes{}.Execute(context.Background(), flag, ops)

	require.True(t, out.IsOK())
	require.Equal(t, "<-p> {\n    \"oko\",\n    \"abc\",\n}", out.Message())
}

func TestShowWords_Execute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mod      int
		expected string
	}{
		{
			name:     "by value",
			mod:      0,
			expected: "<-s> {\n    \"ala\",\n    \"kota\",\n    \"ma\",\n}",
		},
		{
			name:     "by length",
			mod:      1,
			expected: "<-s> {\n    \"ma\",\n    \"ala\",\n    \"kota\",\n}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flag := instruction.Flag{Name: "-s", Pos: 0, Mod: tc.mod}
			ops := &command.Operations{Source: "ala ma kota\n"}

			out := ShowWords{}.Execute(context.Background(), flag, ops)

			require.True(t, out.IsOK())
			require.Equal(t, tc.expected, out.Message())
		})
	}
}

func TestShowWordsReverse_Execute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mod      int
		expected string
	}{
		{
			name:     "by value",
			mod:      0,
			expected: "<-rs> {\n    \"ma\",\n    \"kota\",\n    \"ala\",\n}",
		},
		{
			name:     "by length",
			mod:      1,
			expected: "<-rs> {\n    \"kota\",\n    \"ala\",\n    \"ma\",\n}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flag := instruction.Flag{Name: "-rs", Pos: 0, Mod: tc.mod}
			ops := &command.Operations{Source: "ala ma kota\n"}

			out := ShowWordsReverse{}.Execute(context.Background(), flag, ops)

			require.True(t, out.IsOK())
			require.Equal(t, tc.expected, out.Message())
		})
	}
}

func TestShowFileSize_Execute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		bytes    int
		expected string
	}{
		{name: "plain bytes", bytes: 500, expected: "<-si> 500 B"},
		{name: "megabytes", bytes: 2500000, expected: "<-si> 2.5 MB"},
		{name: "rounded to two decimals", bytes: 1235, expected: "<-si> 1.24 KB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "in.txt")
			require.NoError(t, os.WriteFile(path, make([]byte, tc.bytes), 0o644))

			flag := instruction.Flag{Name: "-si", Pos: 0}
			ops := &command.Operations{Source: "x\n", FileIn: path}

			out := ShowFileSize{}.Execute(context.Background(), flag, ops)

			require.True(t, out.IsOK())
			require.Equal(t, tc.expected, out.Message())
		})
	}
}

func TestShowFileSize_ExecuteMissingFile(t *testing.T) {
	t.Parallel()

	flag := instruction.Flag{Name: "-si", Pos: 0}
	ops := &command.Operations{FileIn: filepath.Join(t.TempDir(), "gone.txt")}

	out := ShowFileSize{}.Execute(context.Background(), flag, ops)

	require.True(t, out.IsErr())
	require.Equal(t, "<-si> Can't read the source file size!", out.Message())
}
