package xlsxgen

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// progress writes human-readable progress lines for one dataset.
type progress struct {
	w       io.Writer
	p       *message.Printer
	label   string
	every   int
	lastErr error
}

func newProgress(w io.Writer, label string, every int) *progress {
	if w == nil {
		w = io.Discard
	}
	return &progress{
		w:     w,
		p:     message.NewPrinter(language.English),
		label: label,
		every: every,
	}
}

// Row reports a written row. Only multiples of the interval produce output.
func (p *progress) Row(row int) {
	if p.every <= 0 || row%p.every != 0 {
		return
	}
	if _, err := p.p.Fprintf(p.w, "[%s] 已寫入 %d 筆\n", p.label, row); err != nil {
		p.lastErr = err
	}
}

// Done reports completion with the elapsed seconds.
func (p *progress) Done(elapsed time.Duration) {
	if _, err := fmt.Fprintf(p.w, "✅ %s 完成 (%.2fs)\n", p.label, elapsed.Seconds()); err != nil {
		p.lastErr = err
	}
}

// Err returns the last error encountered writing progress output.
func (p *progress) Err() error {
	return p.lastErr
}
