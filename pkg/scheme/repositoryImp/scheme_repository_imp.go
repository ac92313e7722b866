package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scheme/repository"
)

type schemeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SchemeRepository { return &schemeRepo{db} }

// List keeps insertion order.
func (r *schemeRepo) List() ([]entities.Scheme, error) {
	out := []entities.Scheme{}
	err := r.db.Order("id").Find(&out).Error
	return out, err
}

func (r *schemeRepo) Create(s *entities.Scheme) error { return r.db.Create(s).Error }

func (r *schemeRepo) Delete(id uint) error { return r.db.Delete(&entities.Scheme{}, id).Error }
