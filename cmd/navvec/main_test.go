package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeScript(t *testing.T, name, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(code), 0o644))
	return path
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length", []string{"eval", "vector.new(3, 4):length()"}, "5\n"},
		{"cross", []string{"eval", "vector.new(1, 0, 0) % vector.new(0, 1, 0)"}, "(0.000, 0.000, 1.000)\n"},
		{"multiple values", []string{"eval", "vector.new(0, 0, 1):upAndRight()"}, "(0.000, 1.000, 0.000)\t(1.000, 0.000, 0.000)\n"},
		{"joined args", []string{"eval", "2", "*", "vector.new(1, 1)"}, "(2.000, 2.000)\n"},
		{"nil value", []string{"eval", "nil and nil"}, "nil\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEvalError(t *testing.T) {
	_, stderr, code := execute(t, "eval", "vector.new(1, 0) * vector.new(0, 0, 1)")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bad argument #2")
}

func TestEvalUsesConfigPrecision(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "navvec.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[display]\nprecision = 1\n"), 0o644))

	stdout, stderr, code := execute(t, "--config", cfg, "eval", "vector.new(1, 2)")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "(1.0, 2.0)\n", stdout)
}

func TestRun(t *testing.T) {
	path := writeScript(t, "route.lua", `
		local north = vector.new(0, 1, 0)
		local leg = north * 120 + vector.new(0, 0, 10)
		print(leg, #leg > 120)
	`)

	stdout, stderr, code := execute(t, "run", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "(0.000, 120.000, 10.000)\ttrue\n", stdout)
}

func TestRunScriptError(t *testing.T) {
	path := writeScript(t, "bad.lua", `vector.new()`)

	_, stderr, code := execute(t, "run", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bad.lua")
	assert.Contains(t, stderr, "invalid size of vector")
}

func TestRunRequiresFile(t *testing.T) {
	_, stderr, code := execute(t, "run")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "accepts 1 arg")
}

func TestDebugLogging(t *testing.T) {
	path := writeScript(t, "ok.lua", `x = 1`)

	_, stderr, code := execute(t, "--log-level", "debug", "run", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "[DEBUG] navvec: running")
	assert.Contains(t, stderr, "command=run")
	assert.Contains(t, stderr, "run=")
}

func TestInvalidLogLevel(t *testing.T) {
	_, stderr, code := execute(t, "--log-level", "loud", "eval", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown log level")
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "navvec dev"), stdout)
}

func TestWatchScriptStopsOnCancel(t *testing.T) {
	path := writeScript(t, "watch.lua", `print(vector.new(1, 0))`)

	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetArgs([]string{"run", "--watch", path})
	root.SetOut(&out)
	root.SetErr(&logs)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, out.String(), "(1.000, 0.000)")
}
