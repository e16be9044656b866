package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caffeineduck/staru/star"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive REPL with persistent bindings",
	Long: `Start an interactive REPL (Read-Eval-Print Loop) session.

Features:
  - Command history (up/down arrows)
  - Line editing (left/right, backspace, delete)
  - History search (Ctrl+R)
  - Multi-line input (end line with \)

Expressions print their value; statements run for effect. Bindings
persist for the whole session. With piped stdin the input is executed
as one program instead of line by line.

Type 'exit' or 'quit' to end the session, or press Ctrl+D.`,
	Run: runRepl,
}

func init() {
	replCmd.Flags().String("history", "", "History file path (default: ~/.staru_history)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	historyFile, _ := cmd.Flags().GetString("history")

	rt, prof, err := newRuntime(cmd)
	if err != nil {
		fatal(err)
	}
	defer rt.Close()

	// Piped input is a batch program, not an interactive session.
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		if err := rt.ExecErr(string(data)); err != nil {
			fatal(err)
		}
		return
	}

	if historyFile == "" {
		historyFile = prof.History
	}
	if historyFile == "" {
		home, _ := os.UserHomeDir()
		historyFile = filepath.Join(home, ".staru_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ">>> ",
		HistoryFile:       historyFile,
		HistoryLimit:      1000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fatal(err)
	}
	defer rl.Close()

	fmt.Fprintln(os.Stderr, "staru REPL (type 'exit' to quit, Ctrl+D to exit)")

	var multiLine strings.Builder
	inMultiLine := false

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if inMultiLine {
					multiLine.Reset()
					inMultiLine = false
					rl.SetPrompt(">>> ")
				}
				continue
			}
			if err == io.EOF {
				return
			}
			fatal(err)
		}

		if !inMultiLine {
			trimmed := strings.TrimSpace(line)
			if trimmed == "exit" || trimmed == "quit" {
				return
			}
			if trimmed == "" {
				continue
			}
		}

		if strings.HasSuffix(line, "\\") {
			multiLine.WriteString(strings.TrimSuffix(line, "\\"))
			multiLine.WriteString("\n")
			inMultiLine = true
			rl.SetPrompt("... ")
			continue
		}

		source := line
		if inMultiLine {
			multiLine.WriteString(line)
			source = multiLine.String()
			multiLine.Reset()
			inMultiLine = false
			rl.SetPrompt(">>> ")
		}

		evalOrExec(rt, source)
	}
}

// evalOrExec tries the input as one expression first, printing its
// value; statement blocks fall back to execution for effect.
func evalOrExec(rt *star.Runtime, source string) {
	h, err := rt.EvalErr(source)
	if err == nil {
		if !h.IsNull() && !h.IsNone() {
			fmt.Println(star.Repr(h))
		}
		h.Close()
		return
	}
	if err := rt.ExecErr(source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
