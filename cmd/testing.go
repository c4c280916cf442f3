package cmd

import (
	"bytes"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// TestExecute executes command with args and returns everything it wrote to its out and err writers.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &syncBuffer{}
	command.SetOut(buf)
	command.SetErr(buf)
	command.SetArgs(args)

	_, err := command.ExecuteC()

	return buf.String(), err
}

// syncBuffer is an io.Writer safe for concurrent use, as a running server writes from multiple goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
