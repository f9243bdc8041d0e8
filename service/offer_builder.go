package service

import (
	"math"

	"github.com/shopspring/decimal"

	"refinance-agent/domain"
)

// roundTo2Decimals redondea un monto a 2 decimales. Non-finite values become 0.
// Rounding is half away from zero on the shortest decimal form of the float,
// so 1.005 gives 1.01. Rounding the exact binary value (JavaScript toFixed)
// gives 1.00, so results can differ from such clients by one cent.
func roundTo2Decimals(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// MonthlyPayment returns the annuity payment that amortizes principal over
// termMonths at annualRate percent. A zero rate splits the principal evenly.
func MonthlyPayment(principal, annualRate, termMonths float64) float64 {
	if principal == 0 || termMonths <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12 / 100
	if monthlyRate == 0 {
		return principal / termMonths
	}

	denominator := 1 - math.Pow(1+monthlyRate, -termMonths)
	if denominator == 0 {
		return principal / termMonths
	}

	return principal * monthlyRate / denominator
}

// BuildOffer computes the refinancing offer for a loan. product may be nil, in
// which case rate and term come from fallback assumptions. It returns nil when
// the loan amount is unknown or not positive.
func BuildOffer(loan domain.Loan, product *domain.NormalizedProduct) *domain.Offer {
	principal := loan.Amount
	if principal <= 0 {
		return nil
	}

	rate := resolveRate(loan, product)
	termMonths := resolveTermMonths(loan, product)
	payment := MonthlyPayment(principal, rate, termMonths)

	offer := &domain.Offer{
		LoanID:         loan.ID,
		OriginalRate:   knownOriginalRate(loan),
		SuggestedRate:  roundTo2Decimals(rate),
		MonthlyPayment: roundTo2Decimals(payment),
		TotalCost:      roundTo2Decimals(payment * termMonths),
		Savings:        estimateSavings(loan, rate, principal, termMonths),
		Source:         domain.OfferSourceFallback,
		ProductName:    DefaultRefinanceProductName,
		Assumptions: domain.OfferAssumptions{
			TermMonths: termMonths,
			Principal:  principal,
		},
	}

	if product != nil {
		productID := product.ProductID
		offer.Source = domain.OfferSourceBankProduct
		offer.ProductID = &productID
		offer.ProductName = product.ProductName
		offer.ProductTermMonths = copyFloat(product.TermMonths)
	}

	return offer
}

// resolveRate picks the product's rate, or without a product three points
// below the loan's rate with a floor of DefaultFallbackRate.
func resolveRate(loan domain.Loan, product *domain.NormalizedProduct) float64 {
	if product != nil {
		return product.InterestRate
	}

	basis := DefaultFallbackRate + FallbackRateReduction
	if loan.InterestRate != nil && *loan.InterestRate != 0 {
		basis = *loan.InterestRate - FallbackRateReduction
	}
	return math.Max(basis, DefaultFallbackRate)
}

func resolveTermMonths(loan domain.Loan, product *domain.NormalizedProduct) float64 {
	if loan.TermMonths != nil && *loan.TermMonths > 0 {
		return *loan.TermMonths
	}
	if product != nil && product.TermMonths != nil && *product.TermMonths > 0 {
		return *product.TermMonths
	}
	return DefaultFallbackTermMonths
}

// estimateSavings is the simple-interest difference between the baseline rate
// and the offered rate over the term. It is 0 whenever the offer is not cheaper.
func estimateSavings(loan domain.Loan, rate, principal, termMonths float64) float64 {
	baseline := DefaultAssumedOriginalRate
	if original := knownOriginalRate(loan); original != nil {
		baseline = *original
	}
	if baseline <= rate {
		return 0
	}
	return roundTo2Decimals((baseline - rate) * principal * termMonths / 1200)
}

func knownOriginalRate(loan domain.Loan) *float64 {
	if loan.InterestRate == nil || *loan.InterestRate <= 0 {
		return nil
	}
	return copyFloat(loan.InterestRate)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
