package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type ScanRepository interface {
	Create(s *entities.Scan) error
}
