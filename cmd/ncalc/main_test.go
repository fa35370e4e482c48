package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := getRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalCmd(t *testing.T) {
	out, _, err := run(t, "", "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14.0\n", out)

	out, _, err = run(t, "", "eval", "1.5", "+", "2.25")
	require.NoError(t, err)
	assert.Equal(t, "3.75\n", out)
}

func TestEvalCmdFailure(t *testing.T) {
	out, errOut, err := run(t, "", "eval", "5/0")
	assert.True(t, errors.Is(err, errEvalFailed))
	assert.Empty(t, out)
	assert.Equal(t, "Error\n", errOut)

	_, errOut, err = run(t, "", "--strict-errors", "eval", "5/0")
	assert.True(t, errors.Is(err, errEvalFailed))
	assert.Contains(t, errOut, "division by zero")

	_, errOut, err = run(t, "", "--strict-errors", "eval", "3+")
	assert.True(t, errors.Is(err, errEvalFailed))
	assert.Contains(t, errOut, "invalid expression")
}

func TestEvalCmdConfig(t *testing.T) {
	path := writeConfig(t, "errorMessage: Ошибка\n")

	_, errOut, err := run(t, "", "--config", path, "eval", "3+")
	assert.Error(t, err)
	assert.Equal(t, "Ошибка\n", errOut)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "eval", "1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, errEvalFailed))
}

func TestTokensCmd(t *testing.T) {
	out, _, err := run(t, "", "tokens", "12+x3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Number", "12", "@0"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Operator", "+", "@2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Number", "3", "@4"}, strings.Fields(lines[2]))
}

func TestReplCmd(t *testing.T) {
	stdin := "2+3*4\n\n8-3-2\n5/0\nclear\n1.5+2.25\nquit\n9*9\n"
	out, _, err := run(t, stdin, "repl")
	require.NoError(t, err)
	assert.Equal(t, "14.0\n3.0\nError\n3.75\n", out)
}

func TestBatchCmd(t *testing.T) {
	stdin := "2+3*4\n8-3-2\n\n5/0\n42\n"
	out, _, err := run(t, stdin, "batch", "-", "--workers", "2")
	assert.True(t, errors.Is(err, errEvalFailed))
	assert.Equal(t, "14.0\n3.0\nError\n42.0\n", out)

	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1+1\n10/4\n"), 0o644))
	out, _, err = run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Equal(t, "2.0\n2.5\n", out)
}

func TestEvalAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evalAll(ctx, []string{"1+1", "2+2"}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLongLines(t *testing.T) {
	long := "1" + strings.Repeat("+1", 40000)
	require.Greater(t, len(long), 64*1024)
	stdin := "2+2\n" + long + "\n3*3\n"

	out, _, err := run(t, stdin, "batch", "-")
	require.NoError(t, err)
	assert.Equal(t, "4.0\n40001.0\n9.0\n", out)

	out, _, err = run(t, stdin, "repl")
	require.NoError(t, err)
	assert.Equal(t, "4.0\n40001.0\n9.0\n", out)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ncalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFlagsOverrideConfig(t *testing.T) {
	verbose := writeConfig(t, "verbosity: 1\n")
	workers := writeConfig(t, "workers: 2\n")

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantErr    string
		wantStderr string
		denyStderr string
	}{
		{
			name:       "verbosity flag enables debug lines",
			args:       []string{"-v", "1", "eval", "2+2"},
			wantStderr: `"msg"="evaluated"`,
		},
		{
			name:       "verbosity from config",
			args:       []string{"--config", verbose, "eval", "2+2"},
			wantStderr: `"msg"="evaluated"`,
		},
		{
			name:       "verbosity flag overrides config",
			args:       []string{"--config", verbose, "--verbosity=0", "eval", "2+2"},
			denyStderr: "evaluated",
		},
		{
			name:    "overridden verbosity is validated",
			args:    []string{"--config", verbose, "--verbosity=-1", "eval", "2+2"},
			wantErr: "verbosity must not be negative",
		},
		{
			name:       "workers from config",
			args:       []string{"--config", workers, "batch", "-"},
			stdin:      "1+1\n",
			wantStderr: `"workers"=2`,
		},
		{
			name:       "workers flag overrides config",
			args:       []string{"--config", workers, "batch", "-", "--workers", "3"},
			stdin:      "1+1\n",
			wantStderr: `"workers"=3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := run(t, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.False(t, errors.Is(err, errEvalFailed))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantStderr != "" {
				assert.Contains(t, errOut, tt.wantStderr)
			}
			if tt.denyStderr != "" {
				assert.NotContains(t, errOut, tt.denyStderr)
			}
		})
	}
}
