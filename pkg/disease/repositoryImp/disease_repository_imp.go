package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/disease/repository"
)

type diseaseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DiseaseRepository { return &diseaseRepo{db} }

func (r *diseaseRepo) List() ([]entities.Disease, error) {
	out := []entities.Disease{}
	err := r.db.Order("name_gu").Find(&out).Error
	return out, err
}

func (r *diseaseRepo) Create(d *entities.Disease) error { return r.db.Create(d).Error }

func (r *diseaseRepo) Delete(id uint) error { return r.db.Delete(&entities.Disease{}, id).Error }
