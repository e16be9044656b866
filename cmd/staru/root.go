package main

import (
	"fmt"
	"os"

	"github.com/caffeineduck/staru/star"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staru [file]",
	Short: "Embedded Starlark runtime with typed host views",
	Long: `staru - Run Starlark code in an embedded runtime.

Run files, inline expressions, or an interactive REPL. Top-level
bindings persist across statements within one invocation. Host globals
and a load() root can be provided with flags or a YAML profile.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun, // Default to run command behavior
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "YAML profile: globals, load root, history path")
	rootCmd.PersistentFlags().String("load-root", "", "Directory load() modules resolve against")

	// Add run-specific flags to root (for default command)
	addRunFlags(rootCmd)
}

// newRuntime builds a runtime from the persistent flags and profile.
func newRuntime(cmd *cobra.Command) (*star.Runtime, *profile, error) {
	profilePath, _ := cmd.Flags().GetString("profile")
	loadRoot, _ := cmd.Flags().GetString("load-root")

	prof := &profile{}
	if profilePath != "" {
		p, err := loadProfile(profilePath)
		if err != nil {
			return nil, nil, err
		}
		prof = p
	}
	if loadRoot == "" {
		loadRoot = prof.LoadRoot
	}

	var opts []star.Option
	if loadRoot != "" {
		opts = append(opts, star.WithLoadRoot(loadRoot))
	}
	for name, value := range prof.Globals {
		opts = append(opts, star.WithGlobal(name, value))
	}

	rt, err := star.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return rt, prof, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
