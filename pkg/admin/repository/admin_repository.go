package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type AdminRepository interface {
	RecentVisits(limit int) ([]entities.Visit, error)
	UsersNewestFirst() ([]entities.User, error)
	ScanRecords(limit int) ([]entities.ScanRecord, error)
}
