package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	hyperdual "github.com/shabbyrobe/go-hyperdual"
	"github.com/shabbyrobe/go-hyperdual/rodrigues"
	"golang.org/x/sync/errgroup"
)

// This prints the Rodrigues formula coefficients a0..a2, b0..b2 and the
// derivatives of the ai, evaluated over a range of angles around zero, once
// per differentiation mode, so the modes can be compared side by side.
//
// Near zero the direct closed forms lose accuracy and finally divide by zero;
// the series and hyper-dual modes are the ones to look at there.

const usage = `Rodrigues coefficient table

Usage: rodrigues [options]

Options are also read from HYPERDUAL_* environment variables.
`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.CommandLine.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	return Run(cfg, os.Stdout, os.Stderr)
}

// Run evaluates every configured mode and writes the table to out.
// Diagnostics go to errOut.
func Run(cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger.SetOutput(errOut)
	}

	if cfg.Dump {
		spew.Fdump(errOut, cfg)
	}

	var table *rodrigues.Table
	var err error
	switch cfg.Precision {
	case 32:
		table, err = buildTable[float32](cfg, logger, errOut)
	case 64:
		table, err = buildTable[float64](cfg, logger, errOut)
	default:
		return fmt.Errorf("unsupported precision %d", cfg.Precision)
	}
	if err != nil {
		return err
	}

	_, err = table.WriteTo(out)
	return err
}

func buildTable[F hyperdual.Float](cfg Config, logger *log.Logger, errOut io.Writer) (*rodrigues.Table, error) {
	coeffs := make([]rodrigues.Coeffs[F], len(cfg.Modes))
	for i, name := range cfg.Modes {
		mode, err := rodrigues.ParseMode(name)
		if err != nil {
			return nil, err
		}
		coeffs[i] = configure[F](cfg, mode)
	}

	points := rodrigues.Points(cfg.Points, F(cfg.Step))

	if cfg.Dump {
		dumpHyperDual(errOut, cfg, points)
	}

	// Values share nothing, so each mode is evaluated on its own goroutine.
	rows := make([][]rodrigues.Row, len(coeffs))
	var g errgroup.Group
	for i, c := range coeffs {
		i, c := i, c
		g.Go(func() error {
			start := time.Now()
			rows[i] = rodrigues.Evaluate(c, points)
			logger.Printf("mode %s: %d rows x %d points in %s", c.Mode(), len(rows[i]), len(points), time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rodrigues.NewTable(points, rows...), nil
}

func configure[F hyperdual.Float](cfg Config, mode rodrigues.Mode) rodrigues.Coeffs[F] {
	switch mode {
	case rodrigues.ModeHyperDual:
		return rodrigues.HyperDual[F]{H1: F(cfg.H1), H2: F(cfg.H2)}
	case rodrigues.ModeSeries:
		return rodrigues.Series[F]{Threshold: F(cfg.Threshold)}
	case rodrigues.ModeFiniteDifference:
		return rodrigues.FiniteDifference[F]{Step: cfg.FDStep}
	default:
		return rodrigues.Direct[F]{}
	}
}

// dumpHyperDual writes the raw hyper-dual results at the first point next to
// zero, before the derivatives are divided out of them.
func dumpHyperDual[F hyperdual.Float](w io.Writer, cfg Config, points []F) {
	if len(points) == 0 {
		return
	}
	theta := points[len(points)-1]
	for _, p := range points {
		if p > 0 {
			theta = p
			break
		}
	}

	hd := rodrigues.HyperDual[F]{H1: F(cfg.H1), H2: F(cfg.H2)}
	raw := make(map[string]hyperdual.Number[F], len(rodrigues.Funcs))
	for _, fn := range rodrigues.Funcs {
		raw[fn.String()] = hd.Eval(fn, theta)
	}
	fmt.Fprintf(w, "hyper-dual evaluations at theta=%v:\n", theta)
	spew.Fdump(w, raw)
}
