package model

// DeckRequest carries the caller's parameters for deck generation.  It is
// bound either from a JSON body (POST) or from query parameters (GET).
// Difficulty is accepted and echoed back but does not filter results; the
// catalog carries no difficulty signal.
type DeckRequest struct {
	TargetLanguage string   `json:"targetLanguage" query:"target"`
	KnownLanguages []string `json:"knownLanguages" query:"known"`
	Difficulty     string   `json:"difficulty" query:"difficulty"`
}

// Deck is the response payload for a generated study deck.
type Deck struct {
	DeckID         string   `json:"deckId"`
	TargetLanguage string   `json:"targetLanguage"`
	KnownLanguages []string `json:"knownLanguages"`
	Difficulty     string   `json:"difficulty"`
	Cards          []Card   `json:"cards"`
}
