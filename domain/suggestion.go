package domain

type SuggestionsMeta struct {
	Total                  int    `json:"total"`
	Source                 string `json:"source,omitempty"`
	BankProductsConsidered int    `json:"bank_products_considered"`
	ExternalSources        *int   `json:"external_sources,omitempty"`
}

type Suggestions struct {
	Data []EnrichedLoan  `json:"data"`
	Meta SuggestionsMeta `json:"meta"`
}
