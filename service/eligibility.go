package service

import (
	"slices"

	"refinance-agent/domain"
)

// FilterEligibleProducts returns the products the loan may be refinanced
// with. Only a declared maximum amount can exclude a product; a loan of
// unknown amount is eligible for everything.
func FilterEligibleProducts(loan domain.Loan, products []domain.NormalizedProduct) []domain.NormalizedProduct {
	if len(products) == 0 {
		return []domain.NormalizedProduct{}
	}
	if loan.Amount == 0 {
		return slices.Clone(products)
	}

	eligible := make([]domain.NormalizedProduct, 0, len(products))
	for _, product := range products {
		if exceedsMaxAmount(product, loan.Amount) {
			continue
		}
		eligible = append(eligible, product)
	}
	return eligible
}

func exceedsMaxAmount(product domain.NormalizedProduct, principal float64) bool {
	return product.MaxAmount != nil && principal > *product.MaxAmount
}
