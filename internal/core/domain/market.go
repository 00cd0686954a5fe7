package domain

// InstrumentMatch is one hit of an instrument search.
type InstrumentMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Region   string `json:"region"`
	Currency string `json:"currency"`
	// Synthetic marks results produced offline because the upstream search failed.
	Synthetic bool `json:"synthetic"`
}
