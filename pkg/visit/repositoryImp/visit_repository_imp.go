package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repository"
)

type visitRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VisitRepository { return &visitRepo{db} }

func (r *visitRepo) Create(v *entities.Visit) error { return r.db.Create(v).Error }

func (r *visitRepo) Totals() (repository.Totals, error) {
	var t repository.Totals
	if err := r.db.Model(&entities.Visit{}).Count(&t.Visits).Error; err != nil {
		return t, err
	}
	if err := r.db.Model(&entities.User{}).Count(&t.Users).Error; err != nil {
		return t, err
	}
	if err := r.db.Model(&entities.Scan{}).Count(&t.Scans).Error; err != nil {
		return t, err
	}
	return t, nil
}
