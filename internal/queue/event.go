// Package queue defines message payloads exchanged over the message broker.
package queue

// DeckGeneratedEvent is published after a deck is successfully generated.
// It carries enough for downstream analytics (which pairs are studied, how
// full the decks are) without another catalog query.
type DeckGeneratedEvent struct {
	DeckID         string   `json:"deck_id"`
	TargetLanguage string   `json:"target_language"`
	KnownLanguages []string `json:"known_languages"`
	Difficulty     string   `json:"difficulty"`
	CardCount      int      `json:"card_count"`
	GeneratedAt    string   `json:"generated_at"`
}
