package service

import (
	"context"

	"wakili/internal/model"
)

// CaseService exposes the externally-owned case catalog. The dev backend
// serves a fixed fixture set; the real case system is a separate product.
type CaseService interface {
	List(ctx context.Context) ([]model.Case, error)
}

type fixtureCaseService struct {
	cases []model.Case
}

// NewFixtureCaseService returns a catalog seeded with representative cases.
func NewFixtureCaseService() CaseService {
	return &fixtureCaseService{cases: []model.Case{
		{CaseID: 1, CaseNumber: "HCCC/E012/2026", CaseTrackNumber: "TRK-2026-0012", CaseDescription: "Succession dispute over family land in Kiambu"},
		{CaseID: 2, CaseNumber: "CMCC/E241/2026", CaseTrackNumber: "TRK-2026-0241", CaseDescription: "Breach of supply contract, Nakuru"},
		{CaseID: 3, CaseNumber: "ELC/E033/2025", CaseTrackNumber: "TRK-2025-0033", CaseDescription: "Boundary dispute, Machakos"},
		{CaseID: 7, CaseNumber: "HCFD/E105/2026", CaseTrackNumber: "TRK-2026-0105", CaseDescription: "Divorce and custody proceedings"},
	}}
}

func (s *fixtureCaseService) List(_ context.Context) ([]model.Case, error) {
	return s.cases, nil
}
