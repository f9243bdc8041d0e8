package domain

import "encoding/json"

// Record is a loosely typed object as it arrives from an upstream API or a fixture file.
type Record map[string]any

// Clone returns a shallow copy so callers can add keys without touching the original.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Loan is the typed view of a loan agreement. Amount is 0 when unknown; the
// pointer fields are nil when the upstream record does not carry a usable value.
type Loan struct {
	ID           string
	Amount       float64
	TermMonths   *float64
	InterestRate *float64
	Source       string
	OriginBank   string
	ProductType  string

	// Record keeps every field of the original agreement for pass-through output.
	Record Record
}

// WithSource returns a copy of the loan tagged with the given source.
func (l Loan) WithSource(source string) Loan {
	l.Source = source
	l.Record = l.Record.Clone()
	l.Record["source"] = source
	return l
}

type EnrichedLoan struct {
	Loan           Loan
	RefinanceOffer *Offer
}

// MarshalJSON emits the original loan record with a refinance_offer key added.
func (e EnrichedLoan) MarshalJSON() ([]byte, error) {
	out := e.Loan.Record.Clone()
	out["refinance_offer"] = e.RefinanceOffer
	return json.Marshal(out)
}
