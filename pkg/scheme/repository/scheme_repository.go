package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type SchemeRepository interface {
	List() ([]entities.Scheme, error)
	Create(s *entities.Scheme) error
	Delete(id uint) error
}
