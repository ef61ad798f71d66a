// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Command frankfilter reads graph6-encoded cubic graphs from standard
// input, classifies each by whether its Frank number is 2, and writes the
// graphs matching the selected predicate to standard output unchanged.
package main // import "github.com/frank-number/filter/cmd/frankfilter"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/frank-number/filter/internal/driver"
)

func main() {
	log.SetPrefix("frankfilter: ")
	log.SetFlags(0)

	heuristicOnly := flag.Bool("2", false, "run only the oddness-2 heuristic; do not fall back to the exact procedure")
	brute := flag.Bool("b", false, "brute-force the exact step with the pairwise bitset pool instead of the propagation solver")
	complement := flag.Bool("c", false, "emit graphs with Frank number 2 instead of graphs with Frank number != 2")
	doublecheck := flag.Bool("d", false, "double-check heuristic successes by constructing and verifying the two orientations")
	exactOnly := flag.Bool("e", false, "run only the exact procedure; disable the oddness-2 heuristic")
	help := flag.Bool("h", false, "print this help message")
	print := flag.Bool("p", false, "print constructed orientations for graphs with Frank number 2 (implies -v)")
	singleGraph := flag.Bool("s", false, "shard the orientation search within a single graph instead of sharding the input stream")
	verbose := flag.Bool("v", false, "print per-graph progress to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: frankfilter [options] [r/m]

Reads graph6-encoded cubic graphs from stdin, one per line, and writes to
stdout every graph whose Frank number is not 2 (or, under -c, every graph
whose Frank number is 2).

The optional r/m argument processes only the graphs (or, under -s, only
the orientation branches of the one graph on stdin) whose 0-based index
satisfies index mod m == r, with 0 <= r < m, so a batch of m processes can
partition a large input.

ex:
 $> echo 'C~' | frankfilter
 $> echo 'IsP@OkWHG' | frankfilter -c
 $> frankfilter -v 0/4 < graphs.g6

Options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	res, mod := 0, 1
	switch flag.NArg() {
	case 0:
	case 1:
		var err error
		res, mod, err = parseResMod(flag.Arg(0))
		if err != nil {
			flag.Usage()
			log.Fatalf("invalid r/m argument %q: %v", flag.Arg(0), err)
		}
	default:
		flag.Usage()
		log.Fatalf("at most one positional r/m argument is allowed, got %d", flag.NArg())
	}

	opts := driver.Options{
		HeuristicOnly: *heuristicOnly,
		Brute:         *brute,
		Complement:    *complement,
		DoubleCheck:   *doublecheck,
		ExactOnly:     *exactOnly,
		Print:         *print,
		SingleGraph:   *singleGraph,
		Verbose:       *verbose || *print,
		Res:           res,
		Mod:           mod,
	}

	warn := func(format string, args ...any) { log.Printf("warning: "+format, args...) }
	info := func(format string, args ...any) { log.Printf(format, args...) }

	stats, err := driver.Run(os.Stdin, os.Stdout, os.Stderr, opts, warn, info)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	if opts.Verbose {
		log.Printf("graphs processed: %d, skipped: %d, emitted: %d, heuristic successes: %d",
			stats.GraphsProcessed, stats.GraphsSkipped, stats.GraphsEmitted, stats.HeuristicSuccesses)
	}
}

// parseResMod parses an "r/m" positional argument, requiring 0 <= r < m.
func parseResMod(s string) (res, mod int, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected r/m, e.g. 0/4")
	}
	res, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("r: %w", err)
	}
	mod, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("m: %w", err)
	}
	if mod < 1 {
		return 0, 0, fmt.Errorf("m must be >= 1")
	}
	if res < 0 || res >= mod {
		return 0, 0, fmt.Errorf("r must satisfy 0 <= r < m")
	}
	return res, mod, nil
}
