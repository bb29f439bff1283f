package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/crawl"
)

// progressURLWidth is the widest URL shown in a progress line.
const progressURLWidth = 60

// progressReporter shows crawl progress as a spinner on terminals and as
// one line per page otherwise.
type progressReporter struct {
	w    io.Writer
	spin *spinner.Spinner
}

func newProgressReporter(w io.Writer) *progressReporter {
	p := &progressReporter{w: w}
	if isTerminal(w) {
		p.spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
		p.spin.Suffix = " starting crawl"
		p.spin.Start()
	}
	return p
}

// Report handles one progress event.
func (p *progressReporter) Report(ev sitereport.CrawlProgress) {
	line := crawl.FormatProgress(ev, progressURLWidth)
	if p.spin != nil {
		p.spin.Lock()
		p.spin.Suffix = " " + line
		p.spin.Unlock()
		return
	}
	fmt.Fprintln(p.w, line)
}

// Stop clears the spinner.
func (p *progressReporter) Stop() {
	if p.spin != nil {
		p.spin.Stop()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
