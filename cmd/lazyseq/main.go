// Command lazyseq queries the lazy prime and Fermi-Dirac sequences from the
// command line.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/chemacortes/lazyseq"
	"github.com/chemacortes/lazyseq/fermidirac"
	zapadapter "github.com/chemacortes/lazyseq/log/zap"
	"github.com/chemacortes/lazyseq/metrics/prom"
	"github.com/chemacortes/lazyseq/primes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	metricsAddr string

	// Per-command flags
	primesIndex int
	fermiIndex  int
	fermiBelow  int64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lazyseq",
	Short: "Query lazy prime and Fermi-Dirac sequences",
	Long: `lazyseq generates primes and Fermi-Dirac powers (numbers p^(2^k) with p
prime) on demand. Sequences are cached in memory for the lifetime of the
process and only ever computed as far as the query requires.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if metricsAddr != "" {
			http.Handle("/metrics", promhttp.Handler())
			go func() {
				if err := http.ListenAndServe(metricsAddr, nil); err != nil {
					logger.Error("metrics server stopped", zap.Error(err))
				}
			}()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var primesCmd = &cobra.Command{
	Use:   "primes [count]",
	Short: "Print the first primes, or one prime by index",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := primes.New(seqOptions("primes")...)

		if primesIndex >= 0 {
			v, err := p.Nth(primesIndex)
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		}

		count, err := countArg(args, 10)
		if err != nil {
			return err
		}
		values, err := p.Slice(0, count, 1)
		if err != nil {
			return err
		}
		for _, v := range values {
			cmd.Println(v)
		}
		return nil
	},
}

var isprimeCmd = &cobra.Command{
	Use:   "isprime <n> [n...]",
	Short: "Test numbers for primality",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := primes.New(seqOptions("primes")...)

		for _, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", arg, err)
			}
			ok, err := p.Contains(n)
			if err != nil {
				return err
			}
			cmd.Printf("%d %v\n", n, ok)
		}
		return nil
	},
}

var fermiCmd = &cobra.Command{
	Use:   "fermi [count]",
	Short: "Print Fermi-Dirac powers p^(2^k)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := fermidirac.New(seqOptions("fermidirac")...)

		if fermiBelow > 0 {
			for _, v := range fermidirac.Below(fd.Primes(), fermiBelow) {
				cmd.Println(v)
			}
			return nil
		}

		if fermiIndex >= 0 {
			v, err := fd.At(fermiIndex)
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		}

		count, err := countArg(args, 14)
		if err != nil {
			return err
		}
		values, err := fd.Slice(0, count, 1)
		if err != nil {
			return err
		}
		for _, v := range values {
			cmd.Println(v)
		}
		return nil
	},
}

// seqOptions wires the logger and, when a metrics endpoint is being served,
// a Prometheus adapter into a sequence.
func seqOptions(subsystem string) []lazyseq.Option {
	opts := []lazyseq.Option{
		lazyseq.WithLogger(zapadapter.Logger{L: logger}),
	}
	if metricsAddr != "" {
		opts = append(opts, lazyseq.WithMetrics(prom.New(nil, "lazyseq", subsystem, nil)))
	}
	return opts
}

func countArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return count, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address (e.g. :8080)")

	primesCmd.Flags().IntVar(&primesIndex, "index", -1, "print only the prime at this index")
	fermiCmd.Flags().IntVar(&fermiIndex, "index", -1, "print only the value at this index")
	fermiCmd.Flags().Int64Var(&fermiBelow, "below", 0, "print every value up to this limit")

	rootCmd.AddCommand(primesCmd, isprimeCmd, fermiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
