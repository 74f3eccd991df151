package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "vscore.dev/pkg/vscore/internal/model"
)

// ManifestName is the file written to the batch output directory after
// all inputs have been scored.
const ManifestName = "manifest.yaml"

// BatchArgs holds the inputs of a multi-file scoring run.
type BatchArgs struct {
	Variants []m.Path
	Matrix   m.Path
	OutDir   m.Path
	Parallel int
}

// BatchManifest summarizes a batch run.
type BatchManifest struct {
	Matrix  string        `yaml:"matrix"`
	Outputs []BatchOutput `yaml:"outputs"`
}

// BatchOutput records where one input file's scores were written.
type BatchOutput struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Records int    `yaml:"records"`
}

// RunBatch scores several variant files against one matrix. The matrix
// is loaded once; per-file runs execute under an errgroup limited to
// args.Parallel workers. Each input x.txt writes <out-dir>/x.tsv, and a
// manifest is written last. Any file failing aborts the whole batch.
func (p *pipeline) RunBatch(ctx context.Context, args BatchArgs) error {
	if len(args.Variants) == 0 {
		return errors.New("no variant files given")
	}

	if err := validateOutDir(args.OutDir); err != nil {
		return err
	}

	if err := checkOutputCollisions(args.OutDir, args.Variants); err != nil {
		return err
	}

	matrix, err := p.matrices.Load(args.Matrix)
	if err != nil {
		return fmt.Errorf("load matrix: %w", err)
	}

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	outputs := make([]BatchOutput, len(args.Variants))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, input := range args.Variants {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, err := p.variants.Load(input)
			if err != nil {
				return fmt.Errorf("load variants: %w", err)
			}

			scored, err := ScoreRecords(records, matrix)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			out := batchOutputPath(args.OutDir, input)
			if err := p.results.Write(out, scored); err != nil {
				return fmt.Errorf("write results: %w", err)
			}

			outputs[i] = BatchOutput{Input: string(input), Output: string(out), Records: len(scored)}

			slog.Debug("scored variant file", "input", input, "output", out, "records", len(scored))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return writeManifest(args.OutDir, BatchManifest{Matrix: string(args.Matrix), Outputs: outputs})
}

func validateOutDir(dir m.Path) error {
	info, err := os.Stat(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %q does not exist", dir)
		}

		return fmt.Errorf("stat output directory %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("output path %q is not a directory", dir)
	}

	return nil
}

// checkOutputCollisions rejects batches where two inputs would map to
// the same output file (e.g. a/x.txt and b/x.txt).
func checkOutputCollisions(dir m.Path, inputs []m.Path) error {
	seen := make(map[m.Path]m.Path, len(inputs))

	for _, input := range inputs {
		out := batchOutputPath(dir, input)
		if prev, dup := seen[out]; dup {
			return fmt.Errorf("inputs %q and %q both map to output %q", prev, input, out)
		}

		seen[out] = input
	}

	return nil
}

func batchOutputPath(dir m.Path, input m.Path) m.Path {
	base := filepath.Base(string(input))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return m.Path(filepath.Join(string(dir), stem+".tsv"))
}

func writeManifest(dir m.Path, manifest BatchManifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(string(dir), ManifestName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
