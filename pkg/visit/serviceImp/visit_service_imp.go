package serviceImp

import (
	"fmt"
	"time"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	repo "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/visit/service"
)

type visitSvc struct {
	r   repo.VisitRepository
	now func() time.Time
}

func NewVisitService(r repo.VisitRepository) service.VisitService {
	return &visitSvc{r: r, now: time.Now}
}

// Track stores one visit stamped in UTC; date is the UTC calendar day.
func (s *visitSvc) Track(ip string) error {
	now := s.now().UTC()
	v := &entities.Visit{IPAddress: ip, VisitTime: now, Date: now.Format("2006-01-02")}
	if err := s.r.Create(v); err != nil {
		return fmt.Errorf("track visit: %w", err)
	}
	return nil
}

func (s *visitSvc) Totals() (repo.Totals, error) {
	t, err := s.r.Totals()
	if err != nil {
		return t, fmt.Errorf("totals: %w", err)
	}
	return t, nil
}
