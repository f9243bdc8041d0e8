package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refinance-agent/domain"
)

func TestParseLoan(t *testing.T) {
	loan := ParseLoan(domain.Record{
		"agreementId":  "a-1",
		"amount":       "250000",
		"termMonths":   36,
		"interestRate": 17.5,
		"originBank":   "other-bank",
		"productType":  "loan",
	})

	assert.Equal(t, "a-1", loan.ID)
	assert.Equal(t, 250000.0, loan.Amount)
	require.NotNil(t, loan.TermMonths)
	assert.Equal(t, 36.0, *loan.TermMonths)
	require.NotNil(t, loan.InterestRate)
	assert.Equal(t, 17.5, *loan.InterestRate)
	assert.Equal(t, "other-bank", loan.OriginBank)
	assert.Equal(t, "loan", loan.ProductType)
	assert.Empty(t, loan.Source)
}

func TestParseLoan_UnknownFields(t *testing.T) {
	loan := ParseLoan(domain.Record{"amount": "", "term_months": "soon", "interest_rate": nil})

	assert.Equal(t, 0.0, loan.Amount)
	assert.Nil(t, loan.TermMonths)
	assert.Nil(t, loan.InterestRate)

	assert.NotNil(t, ParseLoan(nil).Record)
}

func TestInternalLoans(t *testing.T) {
	agreements := ParseLoans([]domain.Record{
		{"agreement_id": "loan", "product_type": "loan"},
		{"agreement_id": "deposit", "product_type": "deposit"},
		{"agreement_id": "tagged", "product_type": "loan", "source": "external"},
		{"agreement_id": "null-source", "product_type": "loan", "source": nil},
		{"agreement_id": "blank-source", "product_type": "loan", "source": "", "origin_bank": "other-bank", "amount": 1000},
	})

	loans := internalLoans(agreements)
	require.Len(t, loans, 4)

	assert.Equal(t, InternalLoanSource, loans[0].Source)
	assert.Equal(t, InternalLoanSource, loans[0].Record["source"])
	assert.Equal(t, "external", loans[1].Source)
	assert.Equal(t, InternalLoanSource, loans[2].Source)

	assert.Equal(t, "blank-source", loans[3].ID)
	assert.Empty(t, loans[3].Source)
	assert.Equal(t, "", loans[3].Record["source"])
	assert.True(t, IsExternalLoan(loans[3]))
	assert.NotNil(t, EnrichLoans(loans[3:], nil)[0].RefinanceOffer)

	_, tagged := agreements[0].Record["source"]
	assert.False(t, tagged)
}
