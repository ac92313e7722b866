package service

import "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repository"

type VisitService interface {
	Track(ip string) error
	Totals() (repository.Totals, error)
}
