package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByMobile(mobile string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("mobile = ?", mobile).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) CountScans(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Scan{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) repository.AdminRepository { return &adminRepo{db} }

func (r *adminRepo) FindByUsername(username string) (*entities.Admin, error) {
	var a entities.Admin
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
