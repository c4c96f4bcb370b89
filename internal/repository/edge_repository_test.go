package repository

import (
	"context"
	"testing"

	"github.com/iliyamo/loanword-api/internal/database"
)

// setupCatalogDB opens an in-memory SQLite catalog and seeds loan_edges.
func setupCatalogDB(t *testing.T) *database.Client {
	t.Helper()
	client, err := database.Open("sqlite://:memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory DB.
	client.DB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = client.Close() })

	const schema = `
		CREATE TABLE loan_edges (
			target_lang TEXT NOT NULL,
			target_word TEXT NOT NULL,
			source_lang TEXT NOT NULL,
			source_word TEXT NOT NULL,
			rel_type    TEXT,
			gloss       TEXT
		)`
	if _, err := client.DB.Exec(schema); err != nil {
		t.Fatalf("create loan_edges: %v", err)
	}

	rows := [][]any{
		{"es", "almohada", "ar", "al-mikhadda", "loanword", "pillow"},
		{"es", "aceituna", "ar", "zaytūn", "loanword", "olive"},
		{"es", "hotel", "en", "hotel", "loanword", "hotel"},
		{"es", "fútbol", "en", "football", "loanword", "football / soccer"},
		{"fr", "week-end", "en", "weekend", "loanword", "weekend"},
		{"es", "azúcar", "ar", "sukkar", "loanword", nil}, // gloss may be NULL
	}
	for _, r := range rows {
		if _, err := client.DB.Exec(
			`INSERT INTO loan_edges (target_lang, target_word, source_lang, source_word, rel_type, gloss)
			 VALUES (?, ?, ?, ?, ?, ?)`, r...); err != nil {
			t.Fatalf("seed loan_edges: %v", err)
		}
	}
	return client
}

func TestEdgeRepoQueryEdges(t *testing.T) {
	repo := NewEdgeRepo(setupCatalogDB(t))
	ctx := context.Background()

	t.Run("filters by target and known languages", func(t *testing.T) {
		edges, err := repo.QueryEdges(ctx, "es", []string{"ar"}, 20)
		if err != nil {
			t.Fatalf("QueryEdges: %v", err)
		}
		if len(edges) != 3 {
			t.Fatalf("expected 3 Arabic->Spanish edges, got %d", len(edges))
		}
		for _, e := range edges {
			if e.SourceLang != "ar" {
				t.Errorf("edge %q has source %q, want ar", e.TargetWord, e.SourceLang)
			}
			if e.TargetLang != "es" {
				t.Errorf("edge %q has target %q, want es", e.TargetWord, e.TargetLang)
			}
		}
	})

	t.Run("null gloss scans as empty string", func(t *testing.T) {
		edges, err := repo.QueryEdges(ctx, "es", []string{"ar"}, 20)
		if err != nil {
			t.Fatalf("QueryEdges: %v", err)
		}
		for _, e := range edges {
			if e.TargetWord == "azúcar" && e.Gloss != "" {
				t.Errorf("expected empty gloss for azúcar, got %q", e.Gloss)
			}
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		edges, err := repo.QueryEdges(ctx, "es", []string{"ar", "en"}, 2)
		if err != nil {
			t.Fatalf("QueryEdges: %v", err)
		}
		if len(edges) != 2 {
			t.Fatalf("expected 2 edges with limit 2, got %d", len(edges))
		}
	})

	t.Run("zero matches returns empty slice", func(t *testing.T) {
		edges, err := repo.QueryEdges(ctx, "de", []string{"en"}, 20)
		if err != nil {
			t.Fatalf("QueryEdges: %v", err)
		}
		if len(edges) != 0 {
			t.Fatalf("expected no edges, got %d", len(edges))
		}
	})

	t.Run("empty known set short-circuits", func(t *testing.T) {
		edges, err := repo.QueryEdges(ctx, "es", nil, 20)
		if err != nil {
			t.Fatalf("QueryEdges: %v", err)
		}
		if len(edges) != 0 {
			t.Fatalf("expected no edges for empty known set, got %d", len(edges))
		}
	})
}
