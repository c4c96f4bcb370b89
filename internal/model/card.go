package model

// Card is a single displayable vocabulary item derived from a LoanEdge.
// Cards are built fresh for every request and never persisted; the ID is
// only unique within the response that carries it.
type Card struct {
	ID            string `json:"id"`
	TargetLang    string `json:"targetLang"`
	Lemma         string `json:"lemma"`
	SourceLang    string `json:"sourceLang"`
	SourceForm    string `json:"sourceForm"`
	Gloss         string `json:"gloss"`
	ExampleTarget string `json:"exampleTarget,omitempty"`
	ExampleGloss  string `json:"exampleGloss,omitempty"`
	IPA           string `json:"ipa,omitempty"`
}
