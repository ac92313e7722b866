package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type CropRepository interface {
	List() ([]entities.Crop, error)
	Create(c *entities.Crop) error
	Delete(id uint) error
}
