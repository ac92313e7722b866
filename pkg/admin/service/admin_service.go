package service

import (
	"github.com/jaybhuva31/Paaksathi-AI/entities"
	visitrepo "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repository"
)

type Dashboard struct {
	Stats        visitrepo.Totals
	RecentVisits []entities.Visit
	Users        []entities.User
}

type AdminService interface {
	Dashboard() (*Dashboard, error)
	ScanRecords() ([]entities.ScanRecord, error)
}
