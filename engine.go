package manganese

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/Gunzinger/manganese/internal/asm"
)

// Engine is the process-wide state described in §3 "Engine state": CPUS,
// ERRORS, and RNG. Per §9 "Engine singletons" it is modeled as a value
// constructed once at startup and passed by reference to every test
// routine, not as mutable package-level globals, so routines stay pure
// with respect to their engine argument and testable in isolation.
type Engine struct {
	isa  asm.ISA
	cpus int

	// errors is ERRORS (§3): a monotonically non-decreasing count of
	// mismatched bytes observed across every test this process has run,
	// mutated only via sync/atomic fetch-add from inside Verify calls.
	errors uint64

	rng *RNG

	// stderr receives one line per verify mismatch (§6 Outputs). Defaults
	// to os.Stderr; tests substitute a buffer to assert on S3/S6-style
	// scenarios without touching the real process stderr.
	stderr io.Writer
}

// NewEngine constructs an Engine bound to isa with the given worker count.
// The RNG is left unseeded; call SeedRNG before running random-inversions.
func NewEngine(isa asm.ISA, cpus int) *Engine {
	return &Engine{isa: isa, cpus: cpus, rng: newRNG(isa), stderr: os.Stderr}
}

// SetErrorWriter overrides where verify-mismatch lines are written.
func (e *Engine) SetErrorWriter(w io.Writer) { e.stderr = w }

// ISA returns the lane-width primitive set this engine was built with.
func (e *Engine) ISA() asm.ISA { return e.isa }

// CPUs returns the fixed worker count (§3 "CPUS").
func (e *Engine) CPUs() int { return e.cpus }

// Errors returns the current value of ERRORS (§3). Safe to call
// concurrently with running tests; per §7 it is "eventually consistent"
// and never read for correctness during a sweep, only for reporting.
func (e *Engine) Errors() uint64 { return atomic.LoadUint64(&e.errors) }

// addErrors adds n to ERRORS via an atomic fetch-add (§4.B.2, §5
// "mutated by atomic fetch-add only").
func (e *Engine) addErrors(n int) {
	if n <= 0 {
		return
	}
	atomic.AddUint64(&e.errors, uint64(n))
}

// SeedRNG seeds the engine's RNG from two non-zero 64-bit values drawn
// from the hardware entropy source (§4.E), re-drawing while both words
// are zero. Must be called once, single-threaded, before any test routine
// runs (§3 "RNG... sole producer of random vectors").
func (e *Engine) SeedRNG(drawEntropy func() (uint64, error)) error {
	return e.rng.seed(drawEntropy)
}

// verifyAndReport runs Verify at off within chunk against expected; on a
// mismatch it writes the ISA's report line to stderr and adds the
// mismatched-byte count to ERRORS (§4.B.2 "Failure semantics"). A verify
// mismatch is never fatal: the sweep that called this always continues
// (§4.D "Tests always run to completion").
func (e *Engine) verifyAndReport(chunk []byte, off, absOff int, expected []byte) {
	report := e.isa.Verify(chunk, off, expected)
	if report.Ok {
		return
	}
	io.WriteString(e.stderr, e.isa.ReportLine(absOff, report)+"\n")
	e.addErrors(report.MismatchedBytes)
}
