package adapter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	m "vscore.dev/pkg/vscore/internal/model"
)

// ScoreHeader is the comment header line of every score file.
const ScoreHeader = "# ID\tScore"

// ResultStore writes scored variants to disk and reads them back.
type ResultStore interface {
	Write(path m.Path, scored []m.ScoredVariant) error
	Read(path m.Path) ([]m.ScoredVariant, error)
}

// LocalResultStore reads and writes tab-separated score files.
type LocalResultStore struct{}

// NewLocalResultStore constructs a LocalResultStore ready to be wired
// into the pipeline.
func NewLocalResultStore() *LocalResultStore {
	return &LocalResultStore{}
}

// Write creates or overwrites the score file at path: the header line,
// then one "<id>\t<score>" line per variant, in the given order.
func (s *LocalResultStore) Write(path m.Path, scored []m.ScoredVariant) error {
	fh, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := bufio.NewWriter(fh)

	if _, err := fmt.Fprintln(w, ScoreHeader); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	for _, sv := range scored {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", sv.ID, sv.Score); err != nil {
			_ = fh.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

// Read parses a previously written score file back into memory. Used by
// the view command.
func (s *LocalResultStore) Read(path m.Path) ([]m.ScoredVariant, error) {
	fh, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open score file: %w", err)
	}

	defer func() { _ = fh.Close() }()

	var scored []m.ScoredVariant

	sc := bufio.NewScanner(fh)
	ln := 0

	for sc.Scan() {
		ln++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 2 fields, got %d", path, ln, len(fields))
		}

		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: score %q is not an integer", path, ln, fields[1])
		}

		scored = append(scored, m.ScoredVariant{ID: fields[0], Score: score})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return scored, nil
}
