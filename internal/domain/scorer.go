// Package domain implements the variant scoring pipeline.
package domain

import (
	"fmt"

	m "vscore.dev/pkg/vscore/internal/model"
)

// ScoreRecords computes one substitution score per record by matrix
// lookup, in input order. The result is a bijection with the input: no
// record is dropped or reordered.
//
// A reference or mutant symbol missing from the matrix alphabet is an
// error naming the variant and the symbol pair; no default score is
// substituted, since a silent zero would corrupt downstream statistics.
func ScoreRecords(records []m.VariantRecord, matrix *m.SubstitutionMatrix) ([]m.ScoredVariant, error) {
	scored := make([]m.ScoredVariant, 0, len(records))

	for _, rec := range records {
		score, err := matrix.Score(rec.Ref, rec.Mut)
		if err != nil {
			return nil, fmt.Errorf("variant %s (%s/%s): %w", rec.ID, rec.Ref, rec.Mut, err)
		}

		scored = append(scored, m.ScoredVariant{ID: rec.ID, Score: score})
	}

	return scored, nil
}
