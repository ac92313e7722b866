package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type Totals struct {
	Visits int64 `json:"total_visits"`
	Users  int64 `json:"total_users"`
	Scans  int64 `json:"total_scans"`
}

type VisitRepository interface {
	Create(v *entities.Visit) error
	Totals() (Totals, error)
}
