package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/loanword-api/internal/database"
	"github.com/iliyamo/loanword-api/internal/model"
)

// EdgeRepo reads loan_edges rows from the catalog database.  It works
// against both Postgres and SQLite; the two differ only in placeholder
// syntax, which is derived from the client's driver.
type EdgeRepo struct {
	db       *database.Client
	postgres bool
}

// NewEdgeRepo constructs an EdgeRepo around an open database client.
func NewEdgeRepo(db *database.Client) *EdgeRepo {
	if db == nil {
		panic("nil database client passed to NewEdgeRepo")
	}
	return &EdgeRepo{db: db, postgres: db.Postgres}
}

// ph returns the placeholder for the i-th (1-based) query argument.
func (r *EdgeRepo) ph(i int) string {
	if r.postgres {
		return "$" + strconv.Itoa(i)
	}
	return "?"
}

// QueryEdges samples up to limit matching edges in random order.  Sampling
// is delegated to the database: ORDER BY random() LIMIT n is a uniform
// sample without replacement on both supported engines.
func (r *EdgeRepo) QueryEdges(ctx context.Context, target string, known []string, limit int) ([]model.LoanEdge, error) {
	if len(known) == 0 {
		return []model.LoanEdge{}, nil
	}

	args := make([]any, 0, len(known)+2)
	args = append(args, target)
	in := make([]string, len(known))
	for i, lang := range known {
		args = append(args, lang)
		in[i] = r.ph(i + 2)
	}
	args = append(args, limit)

	query := `SELECT
			target_lang,
			target_word,
			source_lang,
			source_word,
			COALESCE(rel_type, ''),
			COALESCE(gloss, '')
		FROM loan_edges
		WHERE target_lang = ` + r.ph(1) + `
		  AND source_lang IN (` + strings.Join(in, ", ") + `)
		ORDER BY random()
		LIMIT ` + r.ph(len(known)+2)

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loan_edges: %w", err)
	}
	defer rows.Close()

	out := make([]model.LoanEdge, 0, limit)
	for rows.Next() {
		var e model.LoanEdge
		if err := rows.Scan(
			&e.TargetLang,
			&e.TargetWord,
			&e.SourceLang,
			&e.SourceWord,
			&e.RelType,
			&e.Gloss,
		); err != nil {
			return nil, fmt.Errorf("scan loan_edges row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loan_edges rows: %w", err)
	}
	return out, nil
}
