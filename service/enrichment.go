package service

import "refinance-agent/domain"

// IsExternalLoan reports whether the loan was originated by another bank and
// is therefore a refinancing candidate. An explicit source wins over the
// origin bank.
func IsExternalLoan(loan domain.Loan) bool {
	if loan.Source != "" {
		return loan.Source == ExternalLoanSource
	}
	return loan.OriginBank != "" && loan.OriginBank != SelfOriginBank
}

// EnrichLoans attaches a refinance offer to every external loan. Other loans
// get a nil offer. Order is preserved.
func EnrichLoans(loans []domain.Loan, products []domain.NormalizedProduct) []domain.EnrichedLoan {
	enriched := make([]domain.EnrichedLoan, 0, len(loans))
	for _, loan := range loans {
		var offer *domain.Offer
		if IsExternalLoan(loan) {
			offer = SelectBestOffer(loan, products)
		}
		enriched = append(enriched, domain.EnrichedLoan{Loan: loan, RefinanceOffer: offer})
	}
	return enriched
}
