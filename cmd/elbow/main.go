// Command elbow generates or loads a 2-D point set, runs k-means for every k
// from 1 to a maximum and reports the elbow curve as a table, a terminal
// graph, and optionally HTML and PNG files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"kmeanselbow/internal/config"
	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/monitoring"
	"kmeanselbow/internal/pointgen"
	"kmeanselbow/internal/reference"
	"kmeanselbow/internal/render"
	"kmeanselbow/internal/sweep"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, kmeans.ErrInvalidArgument) {
			fmt.Fprintf(os.Stderr, "invalid argument: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "elbow: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	points      int
	dist        string
	maxK        int
	k           int
	seed        int64
	iterations  int
	workers     int
	input       string
	header      bool
	standardize bool
	htmlOut     string
	pngOut      string
	compare     bool
	debug       bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("elbow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "JSON config file")
	fs.IntVar(&f.points, "n", def.Points, "number of points to generate")
	fs.StringVar(&f.dist, "dist", def.Distribution, "distribution: uniform, normal, blobs or random")
	fs.IntVar(&f.maxK, "maxk", def.MaxK, "largest k to evaluate (clamped to [2,50])")
	fs.IntVar(&f.k, "k", 0, "k to draw on the scatter plot (default: elbow)")
	fs.Int64Var(&f.seed, "seed", 0, "seed for generation and clustering (default: time based)")
	fs.IntVar(&f.iterations, "iterations", def.MaxIterations, "iteration cap per k-means run")
	fs.IntVar(&f.workers, "workers", def.Workers, "number of k values evaluated concurrently")
	fs.StringVar(&f.input, "input", "", "CSV file of x,y points instead of generated ones")
	fs.BoolVar(&f.header, "header", false, "skip the first CSV row")
	fs.BoolVar(&f.standardize, "standardize", false, "scale each axis to zero mean and unit variance")
	fs.StringVar(&f.htmlOut, "html", "", "write an HTML report to this file")
	fs.StringVar(&f.pngOut, "png", "", "write a PNG elbow plot to this file")
	fs.BoolVar(&f.compare, "compare", false, "cross-check the selected k and estimate k with mpraski/clusters")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// resolveConfig layers explicitly set flags over the config file or defaults.
func resolveConfig(f *flags, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if set["n"] {
		cfg.Points = f.points
	}
	if set["dist"] {
		cfg.Distribution = f.dist
	}
	if set["maxk"] {
		cfg.MaxK = f.maxK
	}
	if set["iterations"] {
		cfg.MaxIterations = f.iterations
	}
	if set["workers"] {
		cfg.Workers = f.workers
	}
	if set["seed"] {
		seed := f.seed
		cfg.Seed = &seed
	}
	if set["input"] {
		cfg.Input = f.input
	}
	if set["header"] {
		cfg.InputHeader = f.header
	}
	if set["standardize"] {
		cfg.Standardize = f.standardize
	}
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	f, set, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	logger := monitoring.NewLogger(os.Stderr, f.debug)
	monitoring.SetLogger(logger)

	cfg, err := resolveConfig(f, set)
	if err != nil {
		return err
	}

	runID := uuid.New()
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	logger.Info("run %s: seed=%d", runID, seed)

	points, source, err := loadPoints(cfg, seed)
	if err != nil {
		return err
	}
	if cfg.Standardize {
		points = pointgen.Standardize(points)
	}
	logger.Info("run %s: %d points from %s", runID, len(points), source)

	maxK := config.ClampMaxK(cfg.MaxK)
	sr, err := sweep.Evaluate(points, maxK,
		sweep.WithSeed(seed),
		sweep.WithWorkers(cfg.Workers),
		sweep.WithMaxIterations(cfg.MaxIterations),
		sweep.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	render.WriteTable(stdout, sr)
	if graph := render.ElbowGraph(sr, 12); graph != "" {
		fmt.Fprintln(stdout, graph)
	}

	k := f.k
	if k == 0 {
		if elbow, ok := sr.Elbow(); ok {
			k = elbow
		} else {
			k = 1
		}
	}
	selected, ok := sr.At(k)
	if !ok {
		return fmt.Errorf("%w: k=%d outside evaluated range 1..%d", kmeans.ErrInvalidArgument, k, sr.MaxK())
	}
	fmt.Fprintf(stdout, "selected k=%d inertia=%.4f sizes=%v\n", k, selected.Inertia, selected.Sizes())

	if f.compare {
		if err := compare(stdout, points, selected, maxK, logger); err != nil {
			logger.Error("reference comparison failed: %v", err)
		}
	}

	if f.htmlOut != "" {
		page := render.Page{
			Title:    "K-Means Clustering",
			Subtitle: fmt.Sprintf("%s, n=%d, k=%d, run %s", source, len(points), k, runID),
			Points:   points,
			Selected: selected,
			Sweep:    sr,
			EveryK:   true,
		}
		if err := writeFile(f.htmlOut, func(w io.Writer) error { return render.WriteHTML(w, page) }); err != nil {
			return err
		}
		logger.Info("wrote %s", f.htmlOut)
	}
	if f.pngOut != "" {
		if err := writeFile(f.pngOut, func(w io.Writer) error { return render.WriteElbowPNG(w, sr) }); err != nil {
			return err
		}
		logger.Info("wrote %s", f.pngOut)
	}
	return nil
}

func loadPoints(cfg *config.Config, seed int64) (kmeans.PointSet, string, error) {
	if cfg.Input != "" {
		pts, err := pointgen.LoadCSV(cfg.Input, cfg.InputHeader)
		return pts, cfg.Input, err
	}
	dist, err := pointgen.ParseDistribution(cfg.Distribution)
	if err != nil {
		return nil, "", err
	}
	pts, err := pointgen.NewGenerator(seed).Generate(dist, cfg.Points)
	return pts, string(dist), err
}

func compare(w io.Writer, points kmeans.PointSet, selected kmeans.Result, maxK int, logger *monitoring.Logger) error {
	ref, err := reference.Partition(points, selected.K(), reference.DefaultIterations)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "reference: k=%d inertia=%.4f sizes=%v gap=%+.2f%%\n",
		ref.K(), ref.Inertia, ref.Sizes(), 100*reference.Gap(selected.Inertia, ref.Inertia))

	est, err := reference.Estimate(points, min(maxK, len(points)), reference.DefaultIterations)
	if err != nil {
		logger.Error("reference estimate failed: %v", err)
		return nil
	}
	fmt.Fprintf(w, "reference: estimated k=%d\n", est)
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "create %s", path)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return pkgerrors.Wrapf(file.Close(), "close %s", path)
}
