package service

import "github.com/jaybhuva31/Paaksathi-AI/entities"

type SignupInput struct {
	Name     string
	Mobile   string
	Email    string
	Password string
}

type AuthService interface {
	Signup(in SignupInput) (*entities.User, error)
	Login(mobile, password string) (*entities.User, error)
	AdminLogin(username, password string) (*entities.Admin, error)
	// Profile returns the user and the number of scans they recorded.
	Profile(userID uint) (*entities.User, int64, error)
}
