package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jeje1197/spearmint/internal/builtins"
	"github.com/jeje1197/spearmint/internal/eval"
	"github.com/jeje1197/spearmint/internal/host"
	"github.com/jeje1197/spearmint/internal/repl"
	"github.com/jeje1197/spearmint/pkg/parser"
)

var (
	// Version information (set during build via ldflags, or detected from build info)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						GitCommit = setting.Value[:7]
					}
				case "vcs.time":
					BuildTime = setting.Value
				}
			}
		}
	}
}

var evalExpr string

func main() {
	rootCmd := &cobra.Command{
		Use:   "spearmint",
		Short: "Spearmint: a small interpreted scripting language",
		Long: `Spearmint is a tree-walking interpreter for a small dynamically
typed scripting language with structures, closures, and lists.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a Spearmint source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a Spearmint expression or program passed as a string",
		RunE:  runEval,
	}
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "source text to evaluate")
	evalCmd.MarkFlagRequired("eval")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive Spearmint shell",
		RunE:  runRepl,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE:  runVersion,
	}

	rootCmd.AddCommand(runCmd, evalCmd, replCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	filename := args[0]
	text, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("File: '%s' not found.", filename)
		return nil
	}
	return runSource(filename, string(text))
}

func runEval(cmd *cobra.Command, args []string) error {
	return runSource("Console", evalExpr)
}

func runRepl(cmd *cobra.Command, args []string) error {
	r, err := repl.New()
	if err != nil {
		return err
	}
	return r.Run()
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	return nil
}

func runSource(filename, input string) error {
	start := time.Now()

	program, err := parser.Parse(filename, input)
	if err != nil {
		showError(err)
		return nil
	}

	h := host.NewStdio(os.Stdout, os.Stdin, os.Exit)
	e := eval.New(h, builtins.Register)
	if _, err := e.Run(program); err != nil {
		showError(err)
		return nil
	}

	elapsed := time.Since(start)
	fmt.Printf("Program Time Elapsed: %dms\n", elapsed.Milliseconds())
	return nil
}

func showError(err error) {
	msg := fmt.Sprintf("Exception: %s", err.Error())
	if color.NoColor {
		fmt.Println(msg)
		return
	}
	color.New(color.FgRed).Println(msg)
}
