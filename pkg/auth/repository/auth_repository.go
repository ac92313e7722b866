package repository

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByMobile(mobile string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	CountScans(userID uint) (int64, error)
}

type AdminRepository interface {
	FindByUsername(username string) (*entities.Admin, error)
}
