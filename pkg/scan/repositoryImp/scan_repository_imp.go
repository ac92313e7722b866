package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scan/repository"
)

type scanRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScanRepository { return &scanRepo{db} }

func (r *scanRepo) Create(s *entities.Scan) error { return r.db.Create(s).Error }
