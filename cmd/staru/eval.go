package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caffeineduck/staru/star"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate one expression and print its value",
	Long: `Evaluate a single Starlark expression and print the result.

By default the canonical single-line form is printed; --pretty selects
the indented multi-line form and --json the runtime's JSON encoding.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEval,
}

func init() {
	evalCmd.Flags().Bool("pretty", false, "Print the indented multi-line form")
	evalCmd.Flags().Bool("json", false, "Print the runtime's JSON encoding")
	evalCmd.Flags().Int("indent", 0, "With --json, indent width (0 = compact)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) {
	pretty, _ := cmd.Flags().GetBool("pretty")
	asJSON, _ := cmd.Flags().GetBool("json")
	indent, _ := cmd.Flags().GetInt("indent")

	var expr string
	if len(args) > 0 {
		expr = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		expr = string(data)
	}

	rt, _, err := newRuntime(cmd)
	if err != nil {
		fatal(err)
	}
	defer rt.Close()

	h, err := rt.EvalErr(expr)
	if err != nil {
		fatal(err)
	}

	switch {
	case asJSON:
		fmt.Println(rt.JSONDumps(h, indent))
	case pretty:
		fmt.Println(star.Pretty(h))
	default:
		fmt.Println(star.Repr(h))
	}
}
