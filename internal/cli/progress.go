package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// PageProgress is a progress bar over fetched API pages.
type PageProgress struct {
	bar  *progressbar.ProgressBar
	last int
}

// NewPageProgress creates a bar for up to pages pages.
func NewPageProgress(w io.Writer, pages int) *PageProgress {
	bar := progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Fetching deal pages...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return &PageProgress{bar: bar}
}

// Update moves the bar to the given page. It matches cheapshark.ProgressFunc.
func (p *PageProgress) Update(page, _ int) {
	if page <= p.last {
		return
	}
	p.last = page
	if err := p.bar.Set(page); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish completes the bar, including when the fetch stopped early.
func (p *PageProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}
