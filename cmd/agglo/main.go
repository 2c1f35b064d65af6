// Command agglo samples Gaussian blobs, holds out a stratified test split,
// clusters the training points agglomeratively and prints the centroids.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TrevorS/agglo"
	"github.com/TrevorS/agglo/dataset"
	"github.com/TrevorS/agglo/internal/config"
	"github.com/TrevorS/agglo/internal/monitoring"
	"github.com/TrevorS/agglo/viz"
)

// options holds the parsed command line.
type options struct {
	ConfigFile string
	K          int
	Seed       uint64
	Algorithm  string
	Workers    int
	PNGFile    string
	HTMLFile   string
	JSONFile   string
	Quiet      bool
	Verbose    bool
}

// Report is the JSON document written by -json.
type Report struct {
	RunID        string        `json:"run_id"`
	K            int           `json:"k"`
	Seed         uint64        `json:"seed"`
	Algorithm    string        `json:"algorithm"`
	TrainSize    int           `json:"train_size"`
	TestSize     int           `json:"test_size"`
	Merges       int           `json:"merges"`
	DurationSecs float64       `json:"duration_secs"`
	Centroids    []agglo.Point `json:"centroids"`
	Sizes        []int         `json:"sizes"`
	Labels       []int         `json:"labels"`
	Linkage      [][4]float64  `json:"linkage"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "agglo: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("agglo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.ConfigFile, "config", "", "Path to a JSON run file")
	fs.IntVar(&o.K, "k", config.DefaultK, "Number of clusters to stop at")
	fs.Uint64Var(&o.Seed, "seed", config.DefaultSeed, "Random seed for sampling and splitting")
	fs.StringVar(&o.Algorithm, "algorithm", string(config.DefaultAlgorithm), "Nearest-pair strategy: auto, naive, cached")
	fs.IntVar(&o.Workers, "workers", 0, "Goroutines for the naive scan (0 = NumCPU)")
	fs.StringVar(&o.PNGFile, "png", "", "Write a scatter plot image (format from extension)")
	fs.StringVar(&o.HTMLFile, "html", "", "Write an interactive scatter page")
	fs.StringVar(&o.JSONFile, "json", "", "Write a JSON report")
	fs.BoolVar(&o.Quiet, "quiet", false, "Suppress log output")
	fs.BoolVar(&o.Verbose, "verbose", false, "Log every merge")

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if fs.NArg() > 0 {
		return o, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, fs, nil
}

// resolveConfig loads the run file, if any, and lets explicitly set flags
// override it.
func resolveConfig(o options, fs *flag.FlagSet) (*config.RunConfig, error) {
	cfg := config.DefaultRunConfig()
	if o.ConfigFile != "" {
		loaded, err := config.LoadRunConfig(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "k":
			cfg.K = &o.K
		case "seed":
			cfg.Seed = &o.Seed
		case "algorithm":
			cfg.Algorithm = &o.Algorithm
		case "workers":
			cfg.Workers = &o.Workers
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.Quiet {
		monitoring.SetLogger(nil)
	} else {
		monitoring.SetLogger(monitoring.WriterLogger(stderr))
	}

	cfg, err := resolveConfig(o, fs)
	if err != nil {
		return err
	}

	blobs, size := cfg.GetBlobs()
	seed := cfg.GetSeed()
	samples, err := dataset.Generate(blobs, size, seed)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}
	train, test, err := dataset.StratifiedSplit(samples, cfg.GetTestFraction(), seed)
	if err != nil {
		return fmt.Errorf("failed to split dataset: %w", err)
	}
	monitoring.Logf("generated %d samples from %d blobs (train=%d test=%d)", len(samples), len(blobs), len(train), len(test))

	clusterCfg := cfg.ClusterConfig()
	clusterCfg.Verbose = o.Verbose
	start := time.Now()
	res, err := agglo.ClusterContext(ctx, dataset.Points(train), clusterCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	monitoring.Logf("clustered %d points into %d clusters in %v", len(train), len(res.Clusters), elapsed)

	printCentroids(stdout, res)

	if o.PNGFile != "" {
		if err := viz.SavePlot(o.PNGFile, res, viz.Options{}); err != nil {
			return err
		}
		monitoring.Logf("plot written to %s", o.PNGFile)
	}
	if o.HTMLFile != "" {
		if err := writeHTML(o.HTMLFile, res); err != nil {
			return err
		}
		monitoring.Logf("chart written to %s", o.HTMLFile)
	}
	if o.JSONFile != "" {
		report := newReport(cfg, clusterCfg, res, len(train), len(test), elapsed)
		if err := exportJSON(report, o.JSONFile); err != nil {
			return err
		}
		monitoring.Logf("report %s written to %s", report.RunID, o.JSONFile)
	}
	return nil
}

func printCentroids(w io.Writer, res *agglo.Result) {
	fmt.Fprintln(w, "Final centroids:")
	for i, c := range res.Centroids {
		coords := make([]string, len(c))
		for d, v := range c {
			coords[d] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintf(w, "  %d: (%s) n=%d\n", i, strings.Join(coords, ", "), res.Clusters[i].Len())
	}
}

func newReport(cfg *config.RunConfig, clusterCfg agglo.Config, res *agglo.Result, trainSize, testSize int, elapsed time.Duration) Report {
	sizes := make([]int, len(res.Clusters))
	for i, c := range res.Clusters {
		sizes[i] = c.Len()
	}
	return Report{
		RunID:        uuid.NewString(),
		K:            clusterCfg.K,
		Seed:         cfg.GetSeed(),
		Algorithm:    string(clusterCfg.Algorithm),
		TrainSize:    trainSize,
		TestSize:     testSize,
		Merges:       res.Merges,
		DurationSecs: elapsed.Seconds(),
		Centroids:    res.Centroids,
		Sizes:        sizes,
		Labels:       res.Labels,
		Linkage:      res.Linkage,
	}
}

func writeHTML(path string, res *agglo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := viz.RenderHTML(f, res, viz.Options{}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportJSON(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
