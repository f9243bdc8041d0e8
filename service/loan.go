package service

import "refinance-agent/domain"

// ParseLoan builds the typed view of a loan agreement. It never fails: fields
// that are missing or malformed are left unknown.
func ParseLoan(rec domain.Record) domain.Loan {
	if rec == nil {
		rec = domain.Record{}
	}
	amount, _ := loanFields.amount.number(rec)

	return domain.Loan{
		ID:           loanFields.id.text(rec),
		Amount:       amount,
		TermMonths:   loanFields.term.optionalNumber(rec),
		InterestRate: loanFields.rate.optionalNumber(rec),
		Source:       loanFields.source.text(rec),
		OriginBank:   loanFields.originBank.text(rec),
		ProductType:  loanFields.kind.text(rec),
		Record:       rec,
	}
}

func ParseLoans(records []domain.Record) []domain.Loan {
	loans := make([]domain.Loan, 0, len(records))
	for _, rec := range records {
		loans = append(loans, ParseLoan(rec))
	}
	return loans
}

// internalLoans keeps the bank's own loan agreements and tags the ones that
// carry no source at all. An explicit empty source is left for IsExternalLoan
// to resolve through the origin bank.
func internalLoans(agreements []domain.Loan) []domain.Loan {
	loans := make([]domain.Loan, 0, len(agreements))
	for _, agreement := range agreements {
		if agreement.ProductType != LoanProductType {
			continue
		}
		if !hasSource(agreement.Record) {
			agreement = agreement.WithSource(InternalLoanSource)
		}
		loans = append(loans, agreement)
	}
	return loans
}

func hasSource(rec domain.Record) bool {
	for _, key := range loanFields.source {
		if v, ok := rec[key]; ok && v != nil {
			return true
		}
	}
	return false
}
