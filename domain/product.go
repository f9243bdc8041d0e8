package domain

// NormalizedProduct is a bank loan product in canonical shape.
type NormalizedProduct struct {
	ProductID    string   `json:"productId"`
	ProductName  string   `json:"productName"`
	InterestRate float64  `json:"interestRate"`
	MinAmount    *float64 `json:"minAmount"`
	MaxAmount    *float64 `json:"maxAmount"`
	TermMonths   *float64 `json:"termMonths"`
}
