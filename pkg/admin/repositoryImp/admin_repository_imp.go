package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/admin/repository"
)

type adminRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AdminRepository { return &adminRepo{db} }

func (r *adminRepo) RecentVisits(limit int) ([]entities.Visit, error) {
	var out []entities.Visit
	err := r.db.Order("visit_time DESC").Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *adminRepo) UsersNewestFirst() ([]entities.User, error) {
	var out []entities.User
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

// ScanRecords groups scans by (crop_type, disease_name), most frequent first.
func (r *adminRepo) ScanRecords(limit int) ([]entities.ScanRecord, error) {
	var out []entities.ScanRecord
	err := r.db.Model(&entities.Scan{}).
		Select("crop_type AS crop, disease_name AS disease, COUNT(*) AS count").
		Group("crop_type, disease_name").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
