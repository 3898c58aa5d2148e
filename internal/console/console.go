// Package console serializes output from the REPL loop and from streaming
// tasks that finish in the background.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Console is a line-oriented writer safe for concurrent use. Each call is
// written atomically, so a task's completion line never splits a prompt, but
// lines from different goroutines may interleave in any order.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// New wraps out
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Write implements io.Writer
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// Println writes the operands followed by a newline
func (c *Console) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output
func (c *Console) Printf(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, a...)
}
