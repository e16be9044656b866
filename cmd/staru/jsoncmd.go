package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caffeineduck/staru/star"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Bridge values through the runtime's JSON codec",
}

var jsonEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Evaluate an expression and print it as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run:   runJSONEncode,
}

var jsonDecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Parse JSON and print the value's canonical form",
	Args:  cobra.MaximumNArgs(1),
	Run:   runJSONDecode,
}

func init() {
	jsonEncodeCmd.Flags().Int("indent", 0, "Indent width (0 = compact)")
	jsonDecodeCmd.Flags().Bool("pretty", false, "Print the indented multi-line form")
	jsonCmd.AddCommand(jsonEncodeCmd)
	jsonCmd.AddCommand(jsonDecodeCmd)
	rootCmd.AddCommand(jsonCmd)
}

func readInput(args []string) string {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal(err)
		}
		return string(data)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal(err)
	}
	return string(data)
}

func runJSONEncode(cmd *cobra.Command, args []string) {
	indent, _ := cmd.Flags().GetInt("indent")

	rt, _, err := newRuntime(cmd)
	if err != nil {
		fatal(err)
	}
	defer rt.Close()

	h, err := rt.EvalErr(readInput(args))
	if err != nil {
		fatal(err)
	}
	fmt.Println(rt.JSONDumps(h, indent))
}

func runJSONDecode(cmd *cobra.Command, args []string) {
	pretty, _ := cmd.Flags().GetBool("pretty")

	rt, _, err := newRuntime(cmd)
	if err != nil {
		fatal(err)
	}
	defer rt.Close()

	h := rt.JSONLoads(readInput(args))
	if h.IsNull() {
		os.Exit(1)
	}
	if pretty {
		fmt.Println(star.Pretty(h))
	} else {
		fmt.Println(star.Repr(h))
	}
}
