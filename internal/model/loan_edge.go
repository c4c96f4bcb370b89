package model

// LoanEdge represents one attested borrowing relationship between two
// languages.  Rows live in the loan_edges table and are assumed to be
// populated by an external ingest process; this service only reads them.
//
// Fields:
//  TargetLang – language code of the word being learned.
//  TargetWord – the lemma in the target language.
//  SourceLang – language code the word was borrowed from.
//  SourceWord – the lemma in the source language.
//  RelType    – free-form tag for the borrowing relationship.
//  Gloss      – optional short English definition.
//
// target_lang != source_lang is expected but not enforced anywhere, and
// duplicates on (target_lang, target_word) are possible and acceptable.
type LoanEdge struct {
	TargetLang string // loan_edges.target_lang
	TargetWord string // loan_edges.target_word
	SourceLang string // loan_edges.source_lang
	SourceWord string // loan_edges.source_word
	RelType    string // loan_edges.rel_type
	Gloss      string // loan_edges.gloss

	// Optional enrichments carried by the seed catalog.  The relational
	// layout has no columns for these, so store-backed edges leave them
	// empty and the derived card simply omits them.
	ExampleTarget string
	ExampleGloss  string
	IPA           string
}
