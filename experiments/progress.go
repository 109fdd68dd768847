package experiments

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// progress renders a single updating status line for a benchmark run.
type progress struct {
	out   *termenv.Output
	w     io.Writer
	total int
}

func newProgress(total int) *progress {
	return &progress{
		out:   termenv.NewOutput(os.Stderr),
		w:     os.Stderr,
		total: total,
	}
}

func (p *progress) update(done int, input string, answer int) {
	p.out.ClearLine()
	counter := p.out.String(fmt.Sprintf("[%d/%d]", done, p.total)).Foreground(p.out.Color("6")).Bold()
	best := p.out.String(fmt.Sprintf("answer=%d", answer)).Foreground(p.out.Color("2"))
	fmt.Fprintf(p.w, "\r%s %s %s", counter, input, best)
}

func (p *progress) finish() {
	fmt.Fprintln(p.w)
}
