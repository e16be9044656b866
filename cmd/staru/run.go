package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caffeineduck/staru/star"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a file or inline code",
	Long: `Execute Starlark code in the embedded runtime.

Code can be provided via:
  - File argument: staru run script.star
  - Inline flag: staru run -c 'print(1+1)'
  - Stdin: echo 'print(1+1)' | staru run`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "Code to execute")
	cmd.Flags().Bool("result", false, "Print the file's resulting top-level bindings")
	cmd.Flags().Bool("json", false, "With --result, print the bindings as JSON")
	cmd.Flags().Int("indent", 0, "With --json, indent width (0 = compact)")
}

func runRun(cmd *cobra.Command, args []string) {
	code, _ := cmd.Flags().GetString("code")
	wantResult, _ := cmd.Flags().GetBool("result")
	asJSON, _ := cmd.Flags().GetBool("json")
	indent, _ := cmd.Flags().GetInt("indent")

	var source string
	var filename string

	switch {
	case code != "":
		source = code
	case len(args) > 0:
		filename = args[0]
	default:
		// Check if stdin has data (not a terminal)
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			// No piped input, show help
			cmd.Help()
			return
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		source = string(data)
		if source == "" {
			cmd.Help()
			return
		}
	}

	rt, _, err := newRuntime(cmd)
	if err != nil {
		fatal(err)
	}
	defer rt.Close()

	switch {
	case wantResult && filename != "":
		bindings := rt.RunFileResult(filename)
		if asJSON {
			fmt.Println(rt.JSONDumps(bindings.Handle, indent))
		} else {
			fmt.Println(star.Pretty(bindings.Handle))
		}
	case filename != "":
		rt.RunFile(filename)
	default:
		if err := rt.ExecErr(source); err != nil {
			fatal(err)
		}
	}
}
