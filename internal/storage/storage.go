package storage

import (
	"sync"

	"github.com/zense17/classyncserver/internal/models"
)

type ReportStore struct {
	reports map[string]*models.Report
	mu      sync.RWMutex
}

func New() *ReportStore {
	return &ReportStore{
		reports: make(map[string]*models.Report),
	}
}

func (s *ReportStore) Get(reportID string) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, exists := s.reports[reportID]
	return report, exists
}

func (s *ReportStore) Set(reportID string, report *models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[reportID] = report
}

func (s *ReportStore) GetAll() map[string]*models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.Report, len(s.reports))
	for k, v := range s.reports {
		result[k] = v
	}
	return result
}

func (s *ReportStore) Delete(reportID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, reportID)
}
