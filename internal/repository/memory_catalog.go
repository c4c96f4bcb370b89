package repository

import (
	"context"
	"math/rand/v2"

	"github.com/iliyamo/loanword-api/internal/model"
)

// MemoryCatalog is the in-memory CatalogStore realization.  It backs the
// service when no DATABASE_URL is configured, serving the small seed
// catalog the API shipped with before the loan_edges table existed.
type MemoryCatalog struct {
	edges []model.LoanEdge
}

// NewMemoryCatalog builds a catalog over the given edges.  Passing nil
// uses the built-in seed catalog.
func NewMemoryCatalog(edges []model.LoanEdge) *MemoryCatalog {
	if edges == nil {
		edges = seedEdges()
	}
	return &MemoryCatalog{edges: edges}
}

// QueryEdges filters the catalog by target and known languages, shuffles
// the matches and caps the result at limit.
func (m *MemoryCatalog) QueryEdges(_ context.Context, target string, known []string, limit int) ([]model.LoanEdge, error) {
	knownSet := make(map[string]bool, len(known))
	for _, lang := range known {
		knownSet[lang] = true
	}

	matched := make([]model.LoanEdge, 0, limit)
	for _, e := range m.edges {
		if e.TargetLang == target && knownSet[e.SourceLang] {
			matched = append(matched, e)
		}
	}

	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// seedEdges is the original mock catalog, flattened from its
// (target, source) pair keys into plain edges.
func seedEdges() []model.LoanEdge {
	return []model.LoanEdge{
		{
			TargetLang:    "es",
			TargetWord:    "almohada",
			SourceLang:    "ar",
			SourceWord:    "al-mikhadda",
			RelType:       "loanword",
			Gloss:         "pillow",
			ExampleTarget: "La almohada es nueva.",
			ExampleGloss:  "The pillow is new.",
			IPA:           "al.mo.ˈaða",
		},
		{
			TargetLang:    "es",
			TargetWord:    "aceituna",
			SourceLang:    "ar",
			SourceWord:    "zaytūn",
			RelType:       "loanword",
			Gloss:         "olive",
			ExampleTarget: "La aceituna es verde.",
			ExampleGloss:  "The olive is green.",
			IPA:           "a.θei̯.ˈtu.na",
		},
		{
			TargetLang:    "es",
			TargetWord:    "hotel",
			SourceLang:    "en",
			SourceWord:    "hotel",
			RelType:       "loanword",
			Gloss:         "hotel",
			ExampleTarget: "El hotel está cerca del mar.",
			ExampleGloss:  "The hotel is near the sea.",
			IPA:           "oˈtel",
		},
		{
			TargetLang:    "es",
			TargetWord:    "fútbol",
			SourceLang:    "en",
			SourceWord:    "football",
			RelType:       "loanword",
			Gloss:         "football / soccer",
			ExampleTarget: "Me gusta el fútbol.",
			ExampleGloss:  "I like football.",
			IPA:           "ˈfutβol",
		},
		{
			TargetLang:    "fr",
			TargetWord:    "week-end",
			SourceLang:    "en",
			SourceWord:    "weekend",
			RelType:       "loanword",
			Gloss:         "weekend",
			ExampleTarget: "Le week-end commence vendredi soir.",
			ExampleGloss:  "The weekend starts Friday night.",
			IPA:           "wikˈɛnd",
		},
	}
}
