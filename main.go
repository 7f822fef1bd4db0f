package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/mpalmier/cnfsat/internal/sat"
	"github.com/mpalmier/cnfsat/parsers"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagVerbose = flag.Bool(
	"v",
	false,
	"print search statistics to stderr after solving",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		verbose:      *flagVerbose,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	verbose      bool
}

func run(cfg *config) error {
	s := sat.NewSolver()
	if err := parsers.LoadDIMACS(cfg.instanceFile, false, s); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumClauses())

	status := s.Solve()
	stats := s.Stats()

	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "c time (sec):    %f\n", stats.Elapsed.Seconds())
		fmt.Fprintf(os.Stderr, "c decisions:     %d\n", stats.Decisions)
		fmt.Fprintf(os.Stderr, "c propagations:  %d\n", stats.Propagations)
		fmt.Fprintf(os.Stderr, "c conflicts:     %d\n", stats.Conflicts)
		fmt.Fprintf(os.Stderr, "c props/dec:     %.2f\n", stats.PropsPerDecision)
	}

	fmt.Printf("c status:     %s\n", status.String())
	if status == sat.StatusSat {
		printModel(s.Model())
	}

	return nil
}

func printModel(model []bool) {
	fmt.Print("v")
	for i, b := range model {
		if b {
			fmt.Printf(" %d", i+1)
		} else {
			fmt.Printf(" -%d", i+1)
		}
	}
	fmt.Println(" 0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
