package service

import (
	"strings"

	"refinance-agent/domain"
)

// NormalizeProduct maps a raw catalog record onto the canonical product shape.
// It reports false for records without an identifier, records whose type is
// not "loan" and records without a finite interest rate.
func NormalizeProduct(rec domain.Record) (domain.NormalizedProduct, bool) {
	id := productFields.id.text(rec)
	if id == "" {
		return domain.NormalizedProduct{}, false
	}
	if strings.ToLower(productFields.kind.text(rec)) != LoanProductType {
		return domain.NormalizedProduct{}, false
	}

	rate, ok := productFields.rate.number(rec)
	if !ok {
		return domain.NormalizedProduct{}, false
	}

	name := productFields.name.text(rec)
	if name == "" {
		name = DefaultProductName
	}

	return domain.NormalizedProduct{
		ProductID:    id,
		ProductName:  name,
		InterestRate: rate,
		MinAmount:    productFields.minAmount.optionalNumber(rec),
		MaxAmount:    productFields.maxAmount.optionalNumber(rec),
		TermMonths:   productFields.term.optionalNumber(rec),
	}, true
}

// NormalizeProducts drops every record NormalizeProduct rejects.
func NormalizeProducts(records []domain.Record) []domain.NormalizedProduct {
	products := make([]domain.NormalizedProduct, 0, len(records))
	for _, rec := range records {
		if product, ok := NormalizeProduct(rec); ok {
			products = append(products, product)
		}
	}
	return products
}
