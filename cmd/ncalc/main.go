package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/agenthands/ncalc/pkg/config"
	"github.com/agenthands/ncalc/pkg/logging"
)

// errEvalFailed signals that a failure was already reported to the user.
var errEvalFailed = errors.New("evaluation failed")

// rootEnv carries flags and resolved settings shared by all subcommands.
type rootEnv struct {
	flagConfig    string
	flagVerbosity int
	flagStrict    bool

	cfg config.Config
	log logr.Logger
}

func main() {
	if err := getRootCmd().Execute(); err != nil {
		if !errors.Is(err, errEvalFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// getRootCmd returns the ncalc command tree.
func getRootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:   "ncalc",
		Short: "Evaluate arithmetic expressions with + - * /",
		Long: `
Evaluate arithmetic expressions made of non-negative decimal numbers and the
binary operators + - * /. Multiplication and division bind tighter than
addition and subtraction. Other characters are ignored.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: env.setup,
	}

	cmd.PersistentFlags().StringVar(&env.flagConfig, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().IntVarP(&env.flagVerbosity, "verbosity", "v", 0, "Log verbosity on stderr")
	cmd.PersistentFlags().BoolVar(&env.flagStrict, "strict-errors", false, "Report the error kind instead of the generic error message")

	cmd.AddCommand(
		getEvalCmd(env),
		getTokensCmd(env),
		getReplCmd(env),
		getBatchCmd(env),
	)
	return cmd
}

func (e *rootEnv) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(e.flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.Verbosity = e.flagVerbosity
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	e.cfg = cfg
	e.log = logging.New(cmd.ErrOrStderr(), "ncalc", cfg.Verbosity)
	return nil
}

// display turns an evaluation error into the text shown to the user.
func (e *rootEnv) display(err error) string {
	if e.flagStrict {
		return err.Error()
	}
	return e.cfg.ErrorMessage
}
