package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
)

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

var defaultCrops = []entities.Crop{
	{NameGu: "કપાસ", NameEn: "Cotton"},
	{NameGu: "ઘઉં", NameEn: "Wheat"},
	{NameGu: "ચોખા", NameEn: "Rice"},
	{NameGu: "ટમેટા", NameEn: "Tomato"},
	{NameGu: "બટાટા", NameEn: "Potato"},
	{NameGu: "મગફળી", NameEn: "Groundnut"},
	{NameGu: "ડુંગળી", NameEn: "Onion"},
	{NameGu: "મરચું", NameEn: "Chilli"},
	{NameGu: "રીંગણ", NameEn: "Brinjal"},
	{NameGu: "મકાઈ", NameEn: "Maize"},
}

var defaultDiseases = []entities.Disease{
	{
		NameGu: "કપાસમાં પાંદડાનો કર્લ રોગ", NameEn: "Cotton Leaf Curl Disease", Crop: "કપાસ",
		Symptoms:   []string{"પાંદડા વળી જાય છે", "નસો જાડી થાય છે"},
		Treatment:  []string{"ઇમિડાક્લોપ્રિડ 17.8% SL"},
		Prevention: []string{"પ્રતિકારક જાતો વાવો"},
	},
	{
		NameGu: "મગફળીમાં ટિક્કા રોગ", NameEn: "Groundnut Tikka Disease", Crop: "મગફળી",
		Symptoms:   []string{"પાંદડાઓ પર નાનાં બિંદુઓ"},
		Treatment:  []string{"ફફૂંદનાશક દવા"},
		Prevention: []string{"સરસ વાવણી અંતર"},
	},
	{
		NameGu: "ઘઉંમાં કાટરોગ", NameEn: "Wheat Rust", Crop: "ઘઉં",
		Symptoms:   []string{"પાંદડાઓ પર ગાંઠસરસ લક્ષણો"},
		Treatment:  []string{"ફફૂંદનાશક દવા"},
		Prevention: []string{"પ્રતિકારક જાતો વાવો"},
	},
}

var defaultSchemes = []entities.Scheme{
	{Title: "પીએમ કિસાન સન્માન નિધિ (PM-KISAN)", Description: "ભારત સરકારની યોજના જેમાં ખેડૂતોને વર્ષમાં ₹6000 આર્થિક સહાય મળે છે"},
	{Title: "પ્રધાનમંત્રી ફસલ વીમા યોજના (PM Fasal Bima Yojana)", Description: "કુદરતી આફતથી ફસલને થતા નુકસાન માટે વીમા યોજના"},
	{Title: "માટી આરોગ્ય કાર્ડ યોજના (Soil Health Card Scheme)", Description: "ખેડૂતોને તેમની જમીનની માટી ચકાસણી માટે મફત કાર્ડ"},
}

// Seed inserts default content into empty tables and ensures the default
// admin exists. Safe to run on every start.
func Seed(db *gorm.DB, opts SeedOptions) error {
	if err := seedIfEmpty(db, &entities.Crop{}, cloneSlice(defaultCrops)); err != nil {
		return fmt.Errorf("crops: %w", err)
	}
	if err := seedIfEmpty(db, &entities.Disease{}, cloneSlice(defaultDiseases)); err != nil {
		return fmt.Errorf("diseases: %w", err)
	}
	if err := seedIfEmpty(db, &entities.Scheme{}, cloneSlice(defaultSchemes)); err != nil {
		return fmt.Errorf("schemes: %w", err)
	}
	if opts.AdminUsername == "" {
		return nil
	}
	return seedAdmin(db, opts.AdminUsername, opts.AdminPassword)
}

func seedIfEmpty[T any](db *gorm.DB, model *T, rows []T) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&rows).Error
}

// seedAdmin is insert-or-ignore on username, so an existing admin (and its
// password) is never overwritten.
func seedAdmin(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&entities.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := entities.Admin{Username: username, PasswordHash: string(hash)}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&admin).Error
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
