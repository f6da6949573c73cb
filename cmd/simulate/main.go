// simulate runs concurrent passengers against one plane and reports how many
// seats ended reserved. With --unguarded it skips the booking service's mutex
// and shows the over-claims that result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/Domenick1991/airseats/config"
	"github.com/Domenick1991/airseats/internal/simulation"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := config.Default().Simulation

	var (
		configPath   string
		rows         int
		columns      int
		businessRows int
		passengers   int
		trials       int
		unguarded    bool
		raceWindow   time.Duration
		showMap      bool
	)

	flagSet := pflag.NewFlagSet("simulate", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "read simulation defaults from this config file")
	flagSet.IntVar(&rows, "rows", defaults.Rows, "plane rows")
	flagSet.IntVar(&columns, "cols", defaults.Columns, "plane columns (at most 26)")
	flagSet.IntVar(&businessRows, "business-rows", defaults.BusinessRows, "leading rows sold as business class")
	flagSet.IntVar(&passengers, "passengers", defaults.Passengers, "concurrent passengers")
	flagSet.IntVar(&trials, "trials", defaults.Trials, "number of independent runs")
	flagSet.BoolVar(&unguarded, "unguarded", false, "claim seats without the booking service's mutex")
	flagSet.DurationVar(&raceWindow, "race-window", time.Duration(defaults.RaceWindowMs)*time.Millisecond, "pause between check and mark in unguarded mode")
	flagSet.BoolVar(&showMap, "map", false, "print the occupancy map of a single run")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		// Explicit flags win over the file.
		sim := cfg.Simulation
		if !flagSet.Changed("rows") {
			rows = sim.Rows
		}
		if !flagSet.Changed("cols") {
			columns = sim.Columns
		}
		if !flagSet.Changed("business-rows") {
			businessRows = sim.BusinessRows
		}
		if !flagSet.Changed("passengers") {
			passengers = sim.Passengers
		}
		if !flagSet.Changed("trials") {
			trials = sim.Trials
		}
		if !flagSet.Changed("race-window") {
			raceWindow = time.Duration(sim.RaceWindowMs) * time.Millisecond
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy := simulation.PolicyGuarded
	if unguarded {
		policy = simulation.PolicyUnguarded
	}
	simCfg := simulation.Config{
		Rows:         rows,
		Columns:      columns,
		BusinessRows: businessRows,
		Passengers:   passengers,
		RaceWindow:   raceWindow,
	}

	if trials <= 1 {
		res, err := simulation.Run(ctx, simCfg, policy)
		if err != nil {
			return err
		}
		fmt.Printf("policy=%s seats=%d passengers=%d reserved=%d free=%d claims=%d over_claims=%d state_errors=%d attempts=%d elapsed=%s\n",
			res.Policy, res.Seats, res.Passengers, res.Reserved, res.Free, res.Claims, res.OverClaims, res.StateErrors, res.Attempts, res.Elapsed)
		if showMap {
			printMap(res.Occupied, columns)
		}
		if !res.Exclusive() {
			return fmt.Errorf("%d over-claims detected", res.OverClaims)
		}
		return nil
	}

	summary, err := simulation.RunTrials(ctx, simCfg, policy, trials)
	if err != nil {
		return err
	}
	fmt.Printf("policy=%s trials=%d reserved=[%d..%d] over_claims=%d trials_with_over_claim=%d state_errors=%d attempts=%d elapsed=%s\n",
		summary.Policy, summary.Trials, summary.MinReserved, summary.MaxReserved, summary.OverClaims,
		summary.TrialsWithOverClaim, summary.StateErrors, summary.Attempts, summary.Elapsed)
	if summary.NonExclusive > 0 {
		return fmt.Errorf("%d of %d trials were not exclusive", summary.NonExclusive, summary.Trials)
	}
	return nil
}

func printMap(occupied []bool, columns int) {
	var b strings.Builder
	for i, taken := range occupied {
		if taken {
			b.WriteByte('X')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%columns == 0 {
			fmt.Printf("%3d %s\n", i/columns+1, b.String())
			b.Reset()
		}
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: simulate [flags]\n\nFlags:\n")
	flagSet.PrintDefaults()
}
