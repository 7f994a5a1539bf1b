// Package testutil provides the integration harness for running full flag
// batches against a completely equipped engine.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwrona/textops/internal/cli"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/engine"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Result holds the outcomes of one harness run.
type Result struct {
	Report    string
	LogOutput string
	Engine    *engine.Engine

	dir string
}

// Path resolves a fixture name to its absolute location, for assertions on
// files the run created or rewrote.
func (r *Result) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// RunBatch writes the fixture files to a temporary directory, assembles a
// fully equipped engine with a debug logger, and executes one flag batch.
// Argument tokens that name a fixture file are replaced by the file's
// absolute path, so batches can refer to fixtures by bare name.
func RunBatch(t *testing.T, files map[string]string, args ...string) *Result {
	t.Helper()
	return RunBatchOn(t, cli.NewEngine(), files, args...)
}

// RunBatchOn is RunBatch against a caller-supplied engine, for tests that
// drive several batches through the same instance.
func RunBatchOn(t *testing.T, eng *engine.Engine, files map[string]string, args ...string) *Result {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	resolved := make([]string, len(args))
	for i, arg := range args {
		if _, ok := files[arg]; ok {
			resolved[i] = filepath.Join(dir, arg)
		} else {
			resolved[i] = arg
		}
	}

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	report := eng.Execute(ctx, resolved)

	if os.Getenv("TEXTOPS_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &Result{
		Report:    report,
		LogOutput: logBuffer.String(),
		Engine:    eng,
		dir:       dir,
	}
}
