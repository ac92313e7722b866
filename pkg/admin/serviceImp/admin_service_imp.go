package serviceImp

import (
	"fmt"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	repo "github.com/jaybhuva31/Paaksathi-AI/pkg/admin/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/admin/service"
	visitrepo "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repository"
)

const (
	recentVisitLimit = 50
	scanRecordLimit  = 100
)

type adminSvc struct {
	r      repo.AdminRepository
	visits visitrepo.VisitRepository
}

func NewAdminService(r repo.AdminRepository, visits visitrepo.VisitRepository) service.AdminService {
	return &adminSvc{r: r, visits: visits}
}

func (s *adminSvc) Dashboard() (*service.Dashboard, error) {
	totals, err := s.visits.Totals()
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}
	recent, err := s.r.RecentVisits(recentVisitLimit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	users, err := s.r.UsersNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	if recent == nil {
		recent = []entities.Visit{}
	}
	if users == nil {
		users = []entities.User{}
	}
	return &service.Dashboard{Stats: totals, RecentVisits: recent, Users: users}, nil
}

func (s *adminSvc) ScanRecords() ([]entities.ScanRecord, error) {
	rows, err := s.r.ScanRecords(scanRecordLimit)
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	if rows == nil {
		rows = []entities.ScanRecord{}
	}
	return rows, nil
}
