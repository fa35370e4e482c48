package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/ncalc/pkg/calc"
)

// batchEnv provides the environment for the batch command.
type batchEnv struct {
	*rootEnv
	flagWorkers int
}

// getBatchCmd returns the definition of the batch command.
func getBatchCmd(root *rootEnv) *cobra.Command {
	env := &batchEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Evaluate every non-empty line of a file",
		Long: `
Evaluate every non-empty line of a file ("-" reads stdin) and print one
result per line in input order. Lines are evaluated concurrently. The exit
status is non-zero if any line failed.`,
		Args: cobra.ExactArgs(1),
		RunE: env.runBatchCmd,
	}
	cmd.Flags().IntVar(&env.flagWorkers, "workers", 0, "Concurrent evaluations (overrides config)")
	return cmd
}

type batchResult struct {
	text string
	err  error
}

func (b *batchEnv) runBatchCmd(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "batch: open input")
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	workers := b.cfg.Workers
	if b.flagWorkers > 0 {
		workers = b.flagWorkers
	}

	results, err := evalAll(cmd.Context(), lines, workers)
	if err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			b.log.V(1).Info("evaluation failed", "line", i+1, "expression", lines[i], "error", r.err.Error())
			fmt.Fprintln(cmd.OutOrStdout(), b.display(r.err))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.text)
	}

	b.log.Info("batch finished", "lines", len(lines), "failed", failed, "workers", workers)
	if failed > 0 {
		return errEvalFailed
	}
	return nil
}

// evalAll evaluates lines with at most workers goroutines. Evaluation
// errors are kept per line; only cancellation aborts the run.
func evalAll(ctx context.Context, lines []string, workers int) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]batchResult, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := calc.EvalString(line)
			results[i] = batchResult{text: text, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch")
	}
	return results, nil
}

// newLineScanner reads lines of any length; expressions have no size limit.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return scanner
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "batch: read input")
	}
	return lines, nil
}
