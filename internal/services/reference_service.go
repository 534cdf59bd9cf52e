package services

import (
	"strings"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// ReferenceService serves the static disease, scheme and statistics tables.
type ReferenceService struct {
	reference store.ReferenceStore
}

func NewReferenceService(reference store.ReferenceStore) *ReferenceService {
	return &ReferenceService{reference: reference}
}

// SearchDiseases filters the disease table by farm type and then by a
// case-insensitive substring query over name, symptoms and treatment.
// An empty query returns every disease for the farm type.
func (s *ReferenceService) SearchDiseases(farmType, query string) ([]models.Disease, error) {
	all, err := s.reference.ListDiseases()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list diseases")
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matches := make([]models.Disease, 0, len(all))
	for _, d := range all {
		if !d.MatchesFarmType(farmType) {
			continue
		}
		if query == "" || diseaseMatches(&d, query) {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

func diseaseMatches(d *models.Disease, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(d.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(d.Symptoms), loweredQuery) ||
		strings.Contains(strings.ToLower(d.Treatment), loweredQuery)
}

// ListSchemes returns government schemes applicable to the farm type.
func (s *ReferenceService) ListSchemes(farmType string) ([]models.Scheme, error) {
	all, err := s.reference.ListSchemes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list schemes")
	}

	matches := make([]models.Scheme, 0, len(all))
	for _, sch := range all {
		if sch.MatchesFarmType(farmType) {
			matches = append(matches, sch)
		}
	}
	return matches, nil
}

// Statistics returns the sector statistics rows.
func (s *ReferenceService) Statistics() ([]models.FarmStatistics, error) {
	stats, err := s.reference.ListStatistics()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list statistics")
	}
	return stats, nil
}
