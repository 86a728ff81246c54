package main

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tphakala/go-nanops/internal/bench"
	"github.com/tphakala/go-nanops/internal/simdops"
	"github.com/tphakala/go-nanops/internal/timeit"
)

var (
	verbosity string
	minTime   time.Duration
	seed      uint64
	noPin     bool
	noSIMD    bool
)

var rootCmd = &cobra.Command{
	Use:   "nanbench",
	Short: "Benchmark fast nanops functions against the reference versions",
	Long: `nanbench times each function of the nanops package against its
reference implementation over a fixed table of array shapes and call
signatures. The reported speed is reference time divided by fast time.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		initLogger(cmd.ErrOrStderr())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&verbosity, "verbosity", defaultVerbosity, "Logging verbosity - choose from [info, debug, trace]")
	flags.DurationVar(&minTime, "min-time", defaultMinTime, "Shortest timing batch accepted when scaling the loop count")
	flags.Uint64Var(&seed, "seed", defaultSeed, "Seed for the rand array constructor")
	flags.BoolVar(&noPin, "no-pin", false, "Do not pin the timing thread to one CPU")
	flags.BoolVar(&noSIMD, "no-simd", false, "Use the scalar kernels in the fast functions")
}

func initLogger(out io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(out)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// newComparator builds a comparator from the global flags. The returned
// func undoes any kernel switch.
func newComparator(cmd *cobra.Command) (*bench.Comparator, func()) {
	restore := simdops.UseSIMD(!noSIMD)
	timer := timeit.New(timeit.Options{
		MinTime: minTime,
		Pin:     !noPin,
		Seed:    seed,
	})
	log.Debugf("timer: min time %v, seed %d, pinned %t, simd %t", minTime, seed, !noPin, !noSIMD)
	return bench.NewComparator(timer, cmd.OutOrStdout()), restore
}

// functionArg returns the function named on the command line or the default.
func functionArg(args []string) string {
	if len(args) == 0 {
		return bench.DefaultFunction
	}
	return args[0]
}
