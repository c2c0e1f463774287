// Package progress wraps schollz/progressbar/v3 and dustin/go-humanize for
// the CLI tools' phase reporting and human-readable throughput summaries.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Bar is a labeled progress bar over a known number of steps.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New returns a Bar with total steps and the given description, writing to
// w (os.Stderr in the CLI tools).
func New(w io.Writer, total int, description string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Add advances the bar by n steps.
func (b *Bar) Add(n int) { _ = b.bar.Add(n) }

// Finish marks the bar complete.
func (b *Bar) Finish() { _ = b.bar.Finish() }

// Rate reports entries-per-second given a count processed over elapsed,
// formatted for humans (e.g. "128 k entries/sec"), for morphos-build and
// morphos-bench summaries.
func Rate(count int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "n/a"
	}
	perSec := float64(count) / elapsed.Seconds()
	return fmt.Sprintf("%s entries/sec", humanize.SIWithDigits(perSec, 1, ""))
}

// Bytes formats a byte count for humans (e.g. "3.2 MB"), used by
// morphos-build/morphos-bench when reporting dictionary file sizes.
func Bytes(n uint64) string { return humanize.Bytes(n) }
