package manganese

import (
	"fmt"
	"io"
	"time"
)

// PassReport summarizes one driver-loop pass over every routine in
// Routines (§4.F "between passes report elapsed time, bytes processed,
// effective bandwidth, and ERRORS"). Format is informational, not
// machine-consumed (§6 Outputs).
type PassReport struct {
	Pass    int
	Elapsed time.Duration
	Bytes   uint64
	Errors  uint64
}

// BandwidthMBps is the effective throughput of the pass in megabytes
// (2^20 bytes) per second: Bytes divided by Elapsed. Bytes is the
// caller's per-routine estimate times the number of routines, not a count
// of every byte each routine wrote and read.
func (r PassReport) BandwidthMBps() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds() / (1 << 20)
}

// Fprint writes one human-readable summary line for r to w.
func (r PassReport) Fprint(w io.Writer) {
	fmt.Fprintf(w, "pass %d: %s elapsed, %.1f MB/s, %d errors\n",
		r.Pass, r.Elapsed.Round(time.Millisecond), r.BandwidthMBps(), r.Errors)
}

// RunPass runs every routine in Routines once against buf, in order, and
// returns a report of the pass (§4.F "repeatedly invoke each test
// routine"). bytesPerRoutine is the number of bytes the caller estimates
// each routine moves, used only to compute the reported bandwidth; it does
// not affect correctness.
func RunPass(e *Engine, buf *Buffer, pass int, bytesPerRoutine uint64) PassReport {
	start := time.Now()
	for _, r := range Routines {
		r.Run(e, buf)
	}
	return PassReport{
		Pass:    pass,
		Elapsed: time.Since(start),
		Bytes:   bytesPerRoutine * uint64(len(Routines)),
		Errors:  e.Errors(),
	}
}
