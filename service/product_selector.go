package service

import (
	"cmp"
	"slices"
	"strings"

	"refinance-agent/domain"
)

// SelectBestOffer picks the cheapest product for the loan and builds its
// offer. When no product is strictly eligible the whole catalog is ranked
// instead; an empty catalog yields a fallback offer.
func SelectBestOffer(loan domain.Loan, products []domain.NormalizedProduct) *domain.Offer {
	candidates := FilterEligibleProducts(loan, products)
	if len(candidates) == 0 {
		candidates = slices.Clone(products)
	}
	if len(candidates) == 0 {
		return BuildOffer(loan, nil)
	}

	slices.SortStableFunc(candidates, compareProducts)
	best := candidates[0]
	return BuildOffer(loan, &best)
}

// compareProducts orders by interest rate, then promoted products first,
// then by declared term.
func compareProducts(a, b domain.NormalizedProduct) int {
	if c := cmp.Compare(a.InterestRate, b.InterestRate); c != 0 {
		return c
	}

	if pa, pb := isPromotedProduct(a), isPromotedProduct(b); pa != pb {
		if pa {
			return -1
		}
		return 1
	}

	return cmp.Compare(declaredTermOrDefault(a), declaredTermOrDefault(b))
}

func isPromotedProduct(product domain.NormalizedProduct) bool {
	return strings.Contains(strings.ToLower(product.ProductName), PromotedProductLabel)
}

func declaredTermOrDefault(product domain.NormalizedProduct) float64 {
	if product.TermMonths == nil || *product.TermMonths == 0 {
		return DefaultFallbackTermMonths
	}
	return *product.TermMonths
}
