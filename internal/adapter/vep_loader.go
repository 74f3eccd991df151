package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	m "vscore.dev/pkg/vscore/internal/model"
)

// VariantLoader reads VEP-format variant files from disk.
type VariantLoader interface {
	Load(path m.Path) ([]m.VariantRecord, error)
}

// LocalVariantLoader parses tab- or whitespace-delimited VEP files.
type LocalVariantLoader struct{}

// NewLocalVariantLoader constructs a LocalVariantLoader ready to be
// wired into the pipeline.
func NewLocalVariantLoader() *LocalVariantLoader {
	return &LocalVariantLoader{}
}

// Load reads and parses the variant file at path.
func (l *LocalVariantLoader) Load(path m.Path) ([]m.VariantRecord, error) {
	fh, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open variant file: %w", err)
	}

	defer func() { _ = fh.Close() }()

	records, err := ParseVariants(fh, string(path))
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded variants", "path", path, "records", len(records))

	return records, nil
}

// ParseVariants parses VEP-format text from r; name is used in error
// messages.
//
// The first line is the header and never data. '#'-prefixed and blank
// lines are skipped. Each data line carries at least an identifier and
// a "<ref>/<mut>" amino-acid change field; further columns are ignored.
// A malformed line aborts the parse so identifiers can never
// desynchronize from scores downstream.
func ParseVariants(r io.Reader, name string) ([]m.VariantRecord, error) {
	var records []m.VariantRecord

	sc := bufio.NewScanner(r)
	ln := 0

	for sc.Scan() {
		ln++

		line := strings.TrimSpace(sc.Text())
		if ln == 1 || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected at least 2 fields, got %d", name, ln, len(fields))
		}

		ref, mut, err := splitChange(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}

		records = append(records, m.VariantRecord{ID: fields[0], Ref: ref, Mut: mut})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return records, nil
}

// splitChange splits an amino-acid change field like "A/V" into its
// reference and mutant symbols, reference first.
func splitChange(field string) (m.Symbol, m.Symbol, error) {
	parts := strings.Split(field, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("change field %q must contain exactly one '/'", field)
	}

	ref, err := m.ParseSymbol(parts[0])
	if err != nil {
		return "", "", fmt.Errorf("change field %q: %w", field, err)
	}

	mut, err := m.ParseSymbol(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("change field %q: %w", field, err)
	}

	return ref, mut, nil
}
