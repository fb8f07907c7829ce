package main

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/TrevorS/groupsimilar"
)

// newProgress returns a ProgressFunc that drives a bar on w sized to the
// number of pairs among n records, and a func that finishes the bar.
func newProgress(w io.Writer, n int) (groupsimilar.ProgressFunc, func()) {
	total := groupsimilar.CondensedLen(n)
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("comparing"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	// Workers report out of order; the bar only moves forward.
	var mu sync.Mutex
	last := 0
	progress := func(done, _ int) {
		mu.Lock()
		defer mu.Unlock()
		if done > last {
			_ = bar.Add(done - last)
			last = done
		}
	}
	finish := func() {
		_ = bar.Finish()
	}
	return progress, finish
}
