package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	manganese "github.com/Gunzinger/manganese"
	"github.com/Gunzinger/manganese/internal/platform"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("dramstorm", flag.ContinueOnError)
	flags.SetOutput(stdErr)
	flags.Usage = func() { printUsage(stdErr) }

	var help bool
	flags.BoolVar(&help, "h", false, "Prints usage.")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if help {
		printUsage(stdErr)
		return 0
	}

	if flags.NArg() != 1 {
		printUsage(stdErr)
		return 1
	}

	percent, err := parsePercent(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(stdErr, "invalid argument: %v\n", err)
		printUsage(stdErr)
		return 1
	}

	e, err := manganese.NewConfiguredEngine(manganese.Config{ErrorWriter: stdErr})
	if err != nil {
		fmt.Fprintf(stdErr, "setup failed: %v\n", err)
		return 1
	}

	total, err := platform.TotalMemory()
	if err != nil {
		fmt.Fprintf(stdErr, "setup failed: %v\n", err)
		return 1
	}

	vectorSize := e.ISA().Width()
	granule := e.CPUs() * vectorSize
	size := int(total * uint64(percent) / 100)
	size -= size % granule
	if size <= 0 {
		fmt.Fprintf(stdErr, "setup failed: %d%% of %d bytes rounds to a zero-sized buffer\n", percent, total)
		return 1
	}

	raw, err := platform.AllocateLocked(size)
	if err != nil {
		fmt.Fprintf(stdErr, "setup failed: %v\n", err)
		return 1
	}
	defer platform.Release(raw)

	buf, err := manganese.NewBuffer(raw, e.CPUs(), vectorSize)
	if err != nil {
		fmt.Fprintf(stdErr, "setup failed: %v\n", err)
		return 1
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		<-stop
		close(done)
	}()

	for pass := 1; ; pass++ {
		select {
		case <-done:
			return 0
		default:
		}
		report := manganese.RunPass(e, buf, pass, uint64(buf.Size()))
		report.Fprint(stdOut)
	}
}

// parsePercent parses a "N%" CLI argument (§6 "a percentage N% specifying
// how much of total physical RAM to lock and test").
func parsePercent(s string) (int, error) {
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a percentage", s)
	}
	if n <= 0 || n > 100 {
		return 0, fmt.Errorf("percentage must be in (0, 100], got %d", n)
	}
	return n, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "dramstorm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:\n  dramstorm <N%>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  N%  percentage of total physical RAM to lock and stress-test")
}
