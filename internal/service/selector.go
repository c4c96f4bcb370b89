// Package service implements the deck selection contract on top of a
// catalog store.
package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/loanword-api/internal/model"
	"github.com/iliyamo/loanword-api/internal/repository"
)

// DefaultDeckLimit caps a deck when the caller does not configure one.
const DefaultDeckLimit = 20

// Selector turns a validated language pair query into a bounded deck of
// cards.  It is a pure read path: validation first, one store query, one
// projection, no mutation anywhere.
type Selector struct {
	store repository.CatalogStore
	limit int
}

// NewSelector builds a Selector over the given store.  limit values below 1
// fall back to DefaultDeckLimit.
func NewSelector(store repository.CatalogStore, limit int) *Selector {
	if limit < 1 {
		limit = DefaultDeckLimit
	}
	return &Selector{store: store, limit: limit}
}

// SelectDeck validates the request, samples matching edges from the store
// and projects them into cards.  Both precondition failures return a
// *model.ValidationError before the store is touched.  The returned order
// is whatever the store sampled; repeated identical calls may differ.
func (s *Selector) SelectDeck(ctx context.Context, target string, known []string) ([]model.Card, error) {
	if len(known) == 0 {
		return nil, model.NewValidationError("knownLanguages must contain at least one language code")
	}
	for _, lang := range known {
		if lang == target {
			return nil, model.NewValidationError("targetLanguage must not be in knownLanguages")
		}
	}
	if s.store == nil {
		return nil, model.ErrStoreUnavailable
	}

	edges, err := s.store.QueryEdges(ctx, target, known, s.limit)
	if err != nil {
		return nil, fmt.Errorf("select deck for %s: %w", target, err)
	}

	cards := make([]model.Card, 0, len(edges))
	for i, e := range edges {
		cards = append(cards, projectCard(e, i))
	}
	return cards, nil
}

// Limit reports the configured deck size cap.
func (s *Selector) Limit() int { return s.limit }

// projectCard derives a card from an edge.  The id combines the target
// language, the lemma and the card's position in the deck; it is unique
// within one response and makes no promise beyond that.
func projectCard(e model.LoanEdge, pos int) model.Card {
	return model.Card{
		ID:            fmt.Sprintf("%s-%s-%d", e.TargetLang, e.TargetWord, pos+1),
		TargetLang:    e.TargetLang,
		Lemma:         e.TargetWord,
		SourceLang:    e.SourceLang,
		SourceForm:    e.SourceWord,
		Gloss:         e.Gloss,
		ExampleTarget: e.ExampleTarget,
		ExampleGloss:  e.ExampleGloss,
		IPA:           e.IPA,
	}
}
