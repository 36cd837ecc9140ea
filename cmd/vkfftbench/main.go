// Command vkfftbench times the bridge transform against the CPU FFT baseline
// on synthetic accelerometer data.
//
// Usage:
//
//	vkfftbench [flags]
//
// Examples:
//
//	vkfftbench
//	vkfftbench -sensors 8 -samples 1024 -runs 20
//	vkfftbench -direct -samples 256 -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-vkfft/bridge"
	"github.com/cwbudde/algo-vkfft/fft"
	"github.com/cwbudde/algo-vkfft/internal/cpu"
	"github.com/cwbudde/algo-vkfft/sensor"
	timestats "github.com/cwbudde/algo-vkfft/stats/time"
)

type options struct {
	sensors int
	samples int
	seed    int64
	runs    int
	direct  bool
}

type stageStats struct {
	name    string
	backend string
	ms      *timestats.StreamingStats
}

func newStageStats(name, backend string) *stageStats {
	return &stageStats{name: name, backend: backend, ms: timestats.NewStreamingStats()}
}

func (s *stageStats) add(d time.Duration) {
	s.ms.Update(float64(d) / float64(time.Millisecond))
}

func (s *stageStats) result() timestats.Stats { return s.ms.Result() }

func main() {
	var opts options
	flag.IntVar(&opts.sensors, "sensors", 4, "number of simultaneous sensors")
	flag.IntVar(&opts.samples, "samples", 4096, "samples per sensor window")
	flag.Int64Var(&opts.seed, "seed", sensor.DefaultSeed, "base PRNG seed")
	flag.IntVar(&opts.runs, "runs", 5, "repetitions per stage")
	flag.BoolVar(&opts.direct, "direct", false, "use the direct DFT instead of algo-fft plans")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vkfftbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times the vkfft bridge transform and the CPU FFT baseline.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	bridge.SetLogger(logger)

	stats, err := run(context.Background(), opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printStats(os.Stdout, opts, stats); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) ([]*stageStats, error) {
	if opts.runs <= 0 {
		return nil, fmt.Errorf("runs must be > 0: %d", opts.runs)
	}

	batch, err := sensor.Generate(opts.sensors, opts.samples, sensor.WithSeed(opts.seed))
	if err != nil {
		return nil, err
	}
	input, err := sensor.FromAccelerometer(batch, opts.samples)
	if err != nil {
		return nil, err
	}

	var procOpts []fft.Option
	procOpts = append(procOpts, fft.WithLogger(logger))
	if opts.direct {
		procOpts = append(procOpts, fft.WithDirectDFT())
	}
	proc, err := fft.NewProcessor(opts.sensors, opts.samples, procOpts...)
	if err != nil {
		return nil, err
	}

	bridgeStats := newStageStats("bridge", "scale")
	transferStats := newStageStats("fft transfer", "")
	computeStats := newStageStats("fft compute", "")
	totalStats := newStageStats("fft total", "")

	for r := 0; r < opts.runs; r++ {
		start := time.Now()
		for _, samples := range input.Samples {
			if len(bridge.Transform(samples)) != len(samples) {
				return nil, fmt.Errorf("bridge changed the window length")
			}
		}
		bridgeStats.add(time.Since(start))

		res, err := proc.Process(ctx, input.Samples, input.Weights)
		if err != nil {
			return nil, err
		}
		for _, st := range []*stageStats{transferStats, computeStats, totalStats} {
			st.backend = res.Backend
		}
		transferStats.add(res.Timing.Transfer)
		computeStats.add(res.Timing.Compute)
		totalStats.add(res.Timing.Total())
	}

	return []*stageStats{bridgeStats, transferStats, computeStats, totalStats}, nil
}

func printStats(w io.Writer, opts options, stats []*stageStats) error {
	if _, err := fmt.Fprintf(w, "arch=%s simd=%s sensors=%d samples=%d\n\n",
		cpu.Architecture(), cpu.Level(), opts.sensors, opts.samples); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	ops := float64(opts.sensors) * float64(opts.samples)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tBackend\tRuns\tMean±Std (ms)\tMin (ms)\tMax (ms)\tThroughput (ops/s)\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t----\t-------------\t--------\t--------\t------------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range stats {
		r := s.result()
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f±%.3f\t%.3f\t%.3f\t%.0f\n",
			s.name, s.backend, r.Count, r.Mean, r.StdDev, r.Min, r.Max,
			timestats.Throughput(ops, r.Mean)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
