package repository

import (
	"context"
	"testing"

	"github.com/iliyamo/loanword-api/internal/model"
)

func TestMemoryCatalogFiltersByPair(t *testing.T) {
	cat := NewMemoryCatalog(nil) // built-in seed catalog

	edges, err := cat.QueryEdges(context.Background(), "es", []string{"ar"}, 20)
	if err != nil {
		t.Fatalf("QueryEdges: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 Arabic->Spanish edges, got %d", len(edges))
	}
	for _, e := range edges {
		if e.TargetLang != "es" || e.SourceLang != "ar" {
			t.Errorf("edge %q has pair %s<-%s, want es<-ar", e.TargetWord, e.TargetLang, e.SourceLang)
		}
		if e.TargetWord == "hotel" {
			t.Errorf("English borrowing %q leaked into an Arabic-only deck", e.TargetWord)
		}
	}
}

func TestMemoryCatalogMergesKnownLanguages(t *testing.T) {
	cat := NewMemoryCatalog(nil)

	edges, err := cat.QueryEdges(context.Background(), "es", []string{"ar", "en"}, 20)
	if err != nil {
		t.Fatalf("QueryEdges: %v", err)
	}
	if len(edges) != 4 {
		t.Fatalf("expected all 4 Spanish edges, got %d", len(edges))
	}
}

func TestMemoryCatalogRespectsLimit(t *testing.T) {
	cat := NewMemoryCatalog(nil)

	edges, err := cat.QueryEdges(context.Background(), "es", []string{"ar", "en"}, 3)
	if err != nil {
		t.Fatalf("QueryEdges: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("expected limit of 3 edges, got %d", len(edges))
	}
}

func TestMemoryCatalogNoMatches(t *testing.T) {
	cat := NewMemoryCatalog(nil)

	edges, err := cat.QueryEdges(context.Background(), "de", []string{"en"}, 20)
	if err != nil {
		t.Fatalf("QueryEdges: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("expected no German edges, got %d", len(edges))
	}
}

func TestMemoryCatalogCustomEdges(t *testing.T) {
	cat := NewMemoryCatalog([]model.LoanEdge{
		{TargetLang: "tr", TargetWord: "kuaför", SourceLang: "fr", SourceWord: "coiffeur", Gloss: "hairdresser"},
	})

	edges, err := cat.QueryEdges(context.Background(), "tr", []string{"fr"}, 20)
	if err != nil {
		t.Fatalf("QueryEdges: %v", err)
	}
	if len(edges) != 1 || edges[0].TargetWord != "kuaför" {
		t.Fatalf("unexpected result: %+v", edges)
	}
}
