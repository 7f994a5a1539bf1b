package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwrona/textops/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "textops [FLAG [ARG]]...",
	Short: "Inspect text files and report counts, anagrams, palindromes, and sortings",
	Long: `textops inspects a text file and prints one tagged report line per
reporting flag.

Select the source with -f FILE, or replay a batch of flags stored in a
file with -i FILE. Send the report to a file instead of stdout with -o FILE.

Examples:
  textops -f notes.txt -w -n
  textops -f notes.txt -a kot
  textops -f notes.txt -o report.txt -c -d`,
	// Flag dispatch belongs to the engine, so cobra hands the tokens
	// over unparsed.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli.Run(cmd.Context(), args, cmd.OutOrStdout())
		return nil
	},
}

// main is the entrypoint for the textops application. Whatever happens is
// reported on stdout or in the log, and the process always exits zero.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
