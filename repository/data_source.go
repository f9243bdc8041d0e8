package repository

import (
	"context"

	"refinance-agent/domain"
)

// Snapshot is everything one suggestions request needs, as raw records.
type Snapshot struct {
	// Demo marks fixture data. Its Loans are used as they are.
	Demo  bool
	Loans []domain.Record

	// Live data: the bank's own agreements plus loans held elsewhere.
	Agreements    []domain.Record
	ExternalLoans []domain.Record

	Products []domain.Record
}

// DataSource supplies loans and the product catalog for a borrower.
type DataSource interface {
	Snapshot(ctx context.Context, authorization string) (Snapshot, error)
}
