// Package repository holds the catalog store realizations.  The deck
// selector only sees the CatalogStore interface; whether the rows come from
// a relational table or the built-in seed catalog is wiring decided in main.
package repository

import (
	"context"

	"github.com/iliyamo/loanword-api/internal/model"
)

// CatalogStore is the read-only capability the deck selector consumes.
// QueryEdges returns an unordered random sample of up to limit edges whose
// target language is target and whose source language is in known.  Fewer
// matches than limit means all of them come back; zero matches is an empty
// slice, not an error.
type CatalogStore interface {
	QueryEdges(ctx context.Context, target string, known []string, limit int) ([]model.LoanEdge, error)
}
