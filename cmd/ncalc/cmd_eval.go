package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/agenthands/ncalc/pkg/lexer"
)

// getEvalCmd returns the definition of the eval command.
func getEvalCmd(env *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one expression",
		Long: `
Evaluate one expression and print the result. Arguments are joined with
spaces. Use -- before an expression that starts with '-'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			out, err := calc.EvalString(expr)
			if err != nil {
				env.log.V(1).Info("evaluation failed", "expression", expr, "error", err.Error())
				fmt.Fprintln(cmd.ErrOrStderr(), env.display(err))
				return errEvalFailed
			}
			env.log.V(1).Info("evaluated", "expression", expr, "result", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// getTokensCmd returns the definition of the tokens command.
func getTokensCmd(env *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>...",
		Short: "Print the tokens an expression is split into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			tokens := lexer.Tokenize(expr)
			env.log.V(1).Info("tokenized", "expression", expr, "count", len(tokens))
			for _, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-6s @%d\n", tok.Kind, tok.Lexeme(expr), tok.Offset)
			}
			return nil
		},
	}
}
