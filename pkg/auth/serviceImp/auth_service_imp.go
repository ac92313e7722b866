package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	repo "github.com/jaybhuva31/Paaksathi-AI/pkg/auth/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/auth/service"
)

const (
	msgSignupRequired = "નામ, મોબાઇલ અને પાસવર્ડ જરૂરી છે"
	msgBadMobile      = "માન્ય 10 અંકનો મોબાઇલ નંબર દાખલ કરો"
	msgShortPassword  = "પાસવર્ડ ઓછામાં ઓછા 6 અક્ષરોનો હોવો જોઈએ"
	msgLongPassword   = "પાસવર્ડ ખૂબ લાંબો છે"
	msgLoginRequired  = "મોબાઇલ અને પાસવર્ડ જરૂરી છે"
	msgAdminRequired  = "યુઝરનેમ અને પાસવર્ડ જરૂરી છે"

	MinPasswordLen = 6
)

type authSvc struct {
	users  repo.UserRepository
	admins repo.AdminRepository
	cost   int
}

func NewAuthService(users repo.UserRepository, admins repo.AdminRepository) service.AuthService {
	return &authSvc{users: users, admins: admins, cost: bcrypt.DefaultCost}
}

// ValidMobile reports whether s is exactly ten ASCII digits.
func ValidMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (s *authSvc) Signup(in service.SignupInput) (*entities.User, error) {
	if in.Name == "" || in.Mobile == "" || in.Password == "" {
		return nil, apperr.Validation(msgSignupRequired)
	}
	if !ValidMobile(in.Mobile) {
		return nil, apperr.Validation(msgBadMobile)
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLen {
		return nil, apperr.Validation(msgShortPassword)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Validation(msgLongPassword)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}
	u := &entities.User{
		Name:         in.Name,
		Mobile:       in.Mobile,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(u); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.DuplicateMobile()
		}
		return nil, apperr.Internal(fmt.Errorf("create user: %w", err))
	}
	return u, nil
}

func (s *authSvc) Login(mobile, password string) (*entities.User, error) {
	if mobile == "" || password == "" {
		return nil, apperr.Validation(msgLoginRequired)
	}
	u, err := s.users.FindByMobile(mobile)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.InvalidCredentials(apperr.MsgInvalidCredentials)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("find user: %w", err))
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.InvalidCredentials(apperr.MsgInvalidCredentials)
	}
	return u, nil
}

func (s *authSvc) AdminLogin(username, password string) (*entities.Admin, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation(msgAdminRequired)
	}
	a, err := s.admins.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.InvalidCredentials(apperr.MsgInvalidAdmin)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("find admin: %w", err))
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, apperr.InvalidCredentials(apperr.MsgInvalidAdmin)
	}
	return a, nil
}

func (s *authSvc) Profile(userID uint) (*entities.User, int64, error) {
	u, err := s.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// cookie outlived the row
		return nil, 0, apperr.NotLoggedIn()
	}
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("find user: %w", err))
	}
	n, err := s.users.CountScans(userID)
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("count scans: %w", err))
	}
	return u, n, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
