package service

import (
	"context"
	"fmt"

	"refinance-agent/domain"
	"refinance-agent/logger"
	"refinance-agent/repository"
)

const (
	ModeLive = "live"
	ModeMock = "mock"
)

type Recorder interface {
	SuggestionServed(mode string)
	OfferBuilt(source string)
}

// SuggestionService turns a data source snapshot into refinance suggestions.
type SuggestionService struct {
	source   repository.DataSource
	recorder Recorder
}

func NewSuggestionService(source repository.DataSource, recorder Recorder) *SuggestionService {
	return &SuggestionService{source: source, recorder: recorder}
}

// Suggest loads the borrower's loans and the bank catalog and attaches an
// offer to every external loan.
func (s *SuggestionService) Suggest(ctx context.Context, authorization string) (domain.Suggestions, error) {
	snapshot, err := s.source.Snapshot(ctx, authorization)
	if err != nil {
		return domain.Suggestions{}, fmt.Errorf("load refinance data: %w", err)
	}

	products := NormalizeProducts(snapshot.Products)

	loans := ParseLoans(snapshot.Loans)
	loans = append(loans, internalLoans(ParseLoans(snapshot.Agreements))...)
	external := ParseLoans(snapshot.ExternalLoans)
	loans = append(loans, external...)

	enriched := EnrichLoans(loans, products)

	meta := domain.SuggestionsMeta{
		Total:                  len(enriched),
		BankProductsConsidered: len(products),
	}
	mode := ModeLive
	if snapshot.Demo {
		mode = ModeMock
		meta.Source = ModeMock
	} else {
		externalSources := len(external)
		meta.ExternalSources = &externalSources
	}

	offers := 0
	for _, loan := range enriched {
		if loan.RefinanceOffer == nil {
			continue
		}
		offers++
		if s.recorder != nil {
			s.recorder.OfferBuilt(string(loan.RefinanceOffer.Source))
		}
	}
	if s.recorder != nil {
		s.recorder.SuggestionServed(mode)
	}

	logger.FromContext(ctx).Info("refinance suggestions built",
		"mode", mode,
		"loans", len(enriched),
		"offers", offers,
		"products", len(products),
	)

	return domain.Suggestions{Data: enriched, Meta: meta}, nil
}
