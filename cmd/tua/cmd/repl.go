package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tua-lang/tua/internal/eval"
	"github.com/tua-lang/tua/internal/tua"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Tua session",
	Long: `Start a read-eval-print loop.

Each line is parsed and evaluated as its own program, but bindings made
in one line remain visible to the next: the REPL runs every line against
the same Evaluator, and the evaluator's top-level program frame is never
popped between top-level calls.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	sessionID := uuid.New().String()
	interactive := isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		fmt.Printf("tua repl (session %s) — Ctrl-D to exit\n", sessionID[:8])
	}

	ev := eval.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Println()
			}
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		_, err := tua.RunWith(ev, tua.Source{Text: line, File: "<repl>"})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
