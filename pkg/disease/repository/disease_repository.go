package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type DiseaseRepository interface {
	List() ([]entities.Disease, error)
	Create(d *entities.Disease) error
	Delete(id uint) error
}
