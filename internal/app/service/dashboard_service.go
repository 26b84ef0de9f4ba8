package service

import (
	"time"

	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

type DashboardService interface {
	GetStats() (map[string]interface{}, error)
}

type dashboardService struct {
	documentRepo    repository.DocumentRepository
	clientRepo      repository.ClientRepository
	institutionRepo repository.InstitutionRepository
}

func NewDashboardService(
	documentRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	institutionRepo repository.InstitutionRepository,
) DashboardService {
	return &dashboardService{
		documentRepo:    documentRepo,
		clientRepo:      clientRepo,
		institutionRepo: institutionRepo,
	}
}

// GetStats assembles the landing-page counters. "This month" starts at the
// first of the current month in Asia/Dhaka.
func (s *dashboardService) GetStats() (map[string]interface{}, error) {
	now := time.Now().In(util.Dhaka())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, util.Dhaka())

	stats, err := s.documentRepo.GetStats(monthStart)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.Count()
	if err != nil {
		return nil, err
	}
	institutions, err := s.institutionRepo.Count()
	if err != nil {
		return nil, err
	}

	stats["total_clients"] = clients
	stats["total_institutions"] = institutions
	return stats, nil
}
