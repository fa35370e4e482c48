package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agenthands/ncalc/pkg/session"
)

// getReplCmd returns the definition of the repl command.
func getReplCmd(env *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions read line by line from stdin",
		Long: `
Read one expression per line and print its result. "clear" resets the
display and "quit" or "exit" ends the session. A prompt is shown only when
stdin is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (e *rootEnv) repl(in io.Reader, out io.Writer) error {
	s := session.New(e.cfg.ErrorMessage, e.log.WithName("repl"))
	interactive := isTerminal(in)

	scanner := newLineScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, e.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "clear":
			s.Clear()
			continue
		}

		s.Clear()
		s.Type(line)
		res := s.Equals()
		if err := s.LastError(); err != nil {
			res = e.display(err)
		}
		fmt.Fprintln(out, res)
	}
	return scanner.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
