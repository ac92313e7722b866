package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List() ([]entities.Crop, error) {
	out := []entities.Crop{}
	err := r.db.Order("name_gu").Find(&out).Error
	return out, err
}

func (r *cropRepo) Create(c *entities.Crop) error { return r.db.Create(c).Error }

func (r *cropRepo) Delete(id uint) error { return r.db.Delete(&entities.Crop{}, id).Error }
