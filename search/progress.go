package search

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/nozzle/untwist/internal/console"
)

const (
	// pollInterval is how often the reporter samples the monitor.
	pollInterval = 100 * time.Millisecond
	// etaEvery refreshes the ETA estimate every N ticks (~2s).
	etaEvery = 20
	// rateWindow is the number of instantaneous rate samples averaged
	// into the displayed rate.
	rateWindow = 20
)

var spinner = [4]byte{'|', '/', '-', '\\'}

// Watch renders a single overwritten progress line for the run tracked
// by m until it completes. It only reads the monitor's counters and
// flags and never synchronises with the workers. total is the size of
// the searched range.
func Watch(w io.Writer, m *Monitor, total uint64) {
	for !m.Started() && !m.Completed() {
		time.Sleep(pollInterval)
	}

	var (
		window   []float64
		lastSum  uint64
		lastTick = time.Now()
		eta      float64
		count    int
	)
	for !m.Completed() {
		sum := m.Sum()
		if elapsed := time.Since(lastTick).Seconds(); elapsed > 0 {
			window = append(window, float64(sum-lastSum)/elapsed)
			if len(window) > rateWindow {
				window = window[1:]
			}
		}
		lastSum = sum
		lastTick = time.Now()

		var rate float64
		if len(window) > 0 {
			rate = stat.Mean(window, nil)
		}
		percent := 0.0
		if total > 0 {
			percent = float64(sum) / float64(total) * 100.0
		}
		if count%etaEvery == 0 && rate > 0 {
			eta = float64(total-sum) / rate / 60.0
		}

		fmt.Fprintf(w, "\r\033[K%s Progress: %.2f%%  [%d / %d]  ~%.0f/sec  %.2f minute(s)",
			console.Spinner(spinner[count%4]), percent, sum, total, rate, eta)
		count++
		time.Sleep(pollInterval)
	}
	fmt.Fprint(w, "\r\033[K")
}
