package domain

type OfferSource string

const (
	OfferSourceBankProduct OfferSource = "bank-product"
	OfferSourceFallback    OfferSource = "fallback"
)

type OfferAssumptions struct {
	TermMonths float64 `json:"term_months"`
	Principal  float64 `json:"principal"`
}

// Offer is a refinancing proposal for one loan.
type Offer struct {
	LoanID            string           `json:"loan_id,omitempty"`
	OriginalRate      *float64         `json:"original_rate"`
	SuggestedRate     float64          `json:"suggested_rate"`
	MonthlyPayment    float64          `json:"monthly_payment"`
	TotalCost         float64          `json:"total_cost"`
	Savings           float64          `json:"savings"`
	Source            OfferSource      `json:"source"`
	ProductID         *string          `json:"product_id"`
	ProductName       string           `json:"product_name"`
	ProductTermMonths *float64         `json:"product_term_months"`
	Assumptions       OfferAssumptions `json:"assumptions"`
}
