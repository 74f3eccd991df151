package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vscore.dev/pkg/vscore/internal/adapter"
	m "vscore.dev/pkg/vscore/internal/model"
)

// RunArgs holds the inputs of a single scoring run.
type RunArgs struct {
	Variants m.Path
	Matrix   m.Path
	Output   m.Path
}

// Pipeline sequences the scoring stages: load matrix, load variants,
// score, write. Any stage failing aborts the run before the output file
// is created.
type Pipeline interface {
	Run(ctx context.Context, args RunArgs) error
	RunBatch(ctx context.Context, args BatchArgs) error
}

type pipeline struct {
	matrices adapter.MatrixLoader
	variants adapter.VariantLoader
	results  adapter.ResultStore
}

// NewPipeline creates a Pipeline using the provided adapters.
func NewPipeline(matrices adapter.MatrixLoader, variants adapter.VariantLoader, results adapter.ResultStore) Pipeline {
	return &pipeline{
		matrices: matrices,
		variants: variants,
		results:  results,
	}
}

// ValidateOutputPath rejects bad output paths before any input is read:
// the filename must end in .tsv and the parent directory must exist.
func ValidateOutputPath(path m.Path) error {
	name := filepath.Base(string(path))
	if !strings.HasSuffix(name, ".tsv") {
		return fmt.Errorf("output filename %q must have a .tsv extension", name)
	}

	dir := filepath.Dir(string(path))

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %q does not exist", dir)
		}

		return fmt.Errorf("stat output directory %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("output path parent %q is not a directory", dir)
	}

	return nil
}

// Run executes one scoring run. The output file is only created after
// every variant has been scored, so a failed run never leaves a partial
// result behind.
func (p *pipeline) Run(ctx context.Context, args RunArgs) error {
	if err := ValidateOutputPath(args.Output); err != nil {
		return err
	}

	start := time.Now()

	matrix, err := p.matrices.Load(args.Matrix)
	if err != nil {
		return fmt.Errorf("load matrix: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := p.variants.Load(args.Variants)
	if err != nil {
		return fmt.Errorf("load variants: %w", err)
	}

	scored, err := ScoreRecords(records, matrix)
	if err != nil {
		return fmt.Errorf("score variants: %w", err)
	}

	if err := p.results.Write(args.Output, scored); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	slog.Info("scored variants",
		"variants", args.Variants,
		"matrix", args.Matrix,
		"output", args.Output,
		"records", len(scored),
		"elapsed", time.Since(start),
	)

	return nil
}
