package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// ProgressIndicator reports progress through a batch of lots.
// Step is safe to call from concurrent workers.
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	mu      sync.Mutex
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{writer: w, total: total}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Evaluating %d lots:\n", p.total)
}

// Step displays progress for one finished lot: [N/Total] name
func (p *ProgressIndicator) Step(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	color.New(color.FgCyan).Fprintf(p.writer, "  [%d/%d] %s\n", p.current, p.total, name)
}

// Current returns how many steps have been reported.
func (p *ProgressIndicator) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Complete displays the success message
func (p *ProgressIndicator) Complete() {
	color.New(color.FgGreen).Fprint(p.writer, "✓")
	fmt.Fprintf(p.writer, " Evaluated %d lots\n", p.total)
}

// Fail closes the progress output after a batch aborts.
func (p *ProgressIndicator) Fail(err error) {
	color.New(color.FgRed).Fprint(p.writer, "✗")
	fmt.Fprintf(p.writer, " Stopped after %d/%d lots: %v\n", p.Current(), p.total, err)
}
