package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
	"github.com/spf13/cobra"
)

// errFailed reports that some input lines failed; they were already printed.
var errFailed = errors.New("some expressions failed")

var errExprWithFile = errors.New("--expr cannot be combined with a file argument")

type flags struct {
	cfgFile  string
	expr     string
	lenient  bool
	tree     bool
	dump     bool
	logLevel string
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "gocalc [file]",
	Short: "Evaluate integer arithmetic expressions",
	Long: `gocalc evaluates expressions made of integers, + - * /, unary signs
and parentheses, one per line. Without a file it reads standard input and
shows a prompt when that input is a terminal.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.expr != "" && len(args) > 0 {
			return errExprWithFile
		}
		cfg, err := loadConfig(opts.cfgFile)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if cmd.Flags().Changed("lenient") {
			cfg.Lenient = opts.lenient
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = opts.logLevel
		}
		if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
			return err
		}

		if opts.expr != "" {
			return run(strings.NewReader(opts.expr), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, false)
		}

		in := cmd.InOrStdin()
		interactive := false
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		} else if f, ok := in.(*os.File); ok {
			interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return run(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, interactive)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $HOME/"+defaultConfigName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "WARNING", "log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	rootCmd.Flags().StringVarP(&opts.expr, "expr", "e", "", "evaluate one expression and exit (no file argument allowed)")
	rootCmd.Flags().BoolVar(&opts.lenient, "lenient", false, "ignore input after a complete expression")
	rootCmd.Flags().BoolVar(&opts.tree, "tree", false, "print the syntax tree of each expression")
	rootCmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the syntax tree structure of each expression")
}

func newRepl(in io.Reader, out, errw io.Writer, cfg *config) *gocalc.Repl {
	return &gocalc.Repl{
		In:      in,
		Out:     out,
		Err:     errw,
		Lenient: cfg.Lenient,
		Tree:    opts.tree,
		Dump:    opts.dump,
	}
}

// run drives the read loop. Interactive sessions show the prompt and always
// succeed; batch input fails when any line failed.
func run(in io.Reader, out, errw io.Writer, cfg *config, interactive bool) error {
	repl := newRepl(in, out, errw, cfg)
	if interactive {
		repl.Prompt = cfg.Prompt
	}
	failed, err := repl.Run()
	if err != nil {
		return err
	}
	if failed > 0 && !interactive {
		return errFailed
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
