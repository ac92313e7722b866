package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/export/repository"
)

type exportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExportRepository { return &exportRepo{db} }

// UsersNewestFirst reads created_at as raw text so rows written by older
// releases in other layouts survive to the formatter.
func (r *exportRepo) UsersNewestFirst() ([]repository.UserRow, error) {
	rows, err := r.db.Table("users").
		Select("name, mobile, email, created_at").
		Order("created_at DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.UserRow
	for rows.Next() {
		var u repository.UserRow
		if err := rows.Scan(&u.Name, &u.Mobile, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
