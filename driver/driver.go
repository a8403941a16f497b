// SPDX-License-Identifier: MIT

// Package driver orchestrates one benchmark run:
// read A and B → check compatibility → multiply sequentially (timed) →
// multiply in parallel (timed) → optionally cross-check → write the parallel
// product → report both timings.
//
// Every step returns an error instead of exiting; Main converts the first
// error into a diagnostic and an exit status in one place.
package driver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/matrixio"
	"github.com/katalvlaran/lvmatmul/multiply"
)

// Tolerances for the gonum cross-check under --verify.
const (
	verifyRelTol = 1e-9
	verifyAbsTol = 1e-9
)

// Config is the resolved command line.
type Config struct {
	PathA   string // first operand
	PathB   string // second operand
	PathOut string // destination of the parallel product

	Workers int  // parallel workers; 0 ⇒ GOMAXPROCS
	Verify  bool // cross-check Sequential, Parallel and Reference before writing
}

// Run executes the pipeline for cfg and returns the measured timings.
// All matrices it creates are released before it returns. On any error
// the output file is left untouched unless the failure happened while writing it.
func Run(cfg Config, log zerolog.Logger) (Report, error) {
	var rep Report

	a, err := matrixio.Read(cfg.PathA)
	if err != nil {
		return rep, err
	}
	defer a.Release()

	b, err := matrixio.Read(cfg.PathB)
	if err != nil {
		return rep, err
	}
	defer b.Release()

	log.Debug().
		Str("a", cfg.PathA).Int("a_rows", a.Rows()).Int("a_cols", a.Cols()).
		Str("b", cfg.PathB).Int("b_rows", b.Rows()).Int("b_cols", b.Cols()).
		Msg("matrices loaded")

	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return rep, fmt.Errorf("%s (%dx%d) × %s (%dx%d): %w",
			cfg.PathA, a.Rows(), a.Cols(), cfg.PathB, b.Rows(), b.Cols(), err)
	}

	start := time.Now()
	seq, err := multiply.Sequential(a, b)
	rep.Serial = time.Since(start)
	if err != nil {
		return rep, err
	}
	defer seq.Release()
	log.Debug().Dur("elapsed", rep.Serial).Msg("sequential product done")

	start = time.Now()
	par, err := multiply.Parallel(a, b, multiply.WithWorkers(cfg.Workers))
	rep.Parallel = time.Since(start)
	if err != nil {
		return rep, err
	}
	defer par.Release()
	log.Debug().Dur("elapsed", rep.Parallel).Int("workers", cfg.Workers).Msg("parallel product done")

	if cfg.Verify {
		if err = verify(a, b, seq, par, log); err != nil {
			return rep, err
		}
	}

	if err = matrixio.Write(cfg.PathOut, par); err != nil {
		return rep, err
	}
	log.Debug().Str("path", cfg.PathOut).Int("rows", par.Rows()).Int("cols", par.Cols()).Msg("result written")

	return rep, nil
}

// verify requires seq and par to be identical and both to match gonum's product.
func verify(a, b, seq, par *matrix.Dense, log zerolog.Logger) error {
	same, err := matrix.AllClose(par, seq, 0, 0)
	if err != nil {
		return err
	}
	if !same {
		return fmt.Errorf("%w: parallel differs from sequential", ErrVerify)
	}

	ref, err := multiply.Reference(a, b)
	if err != nil {
		return err
	}
	defer ref.Release()

	near, err := matrix.AllClose(seq, ref, verifyRelTol, verifyAbsTol)
	if err != nil {
		return err
	}
	if !near {
		return fmt.Errorf("%w: sequential differs from gonum reference", ErrVerify)
	}
	log.Debug().Msg("products verified")

	return nil
}
