package repository

import "database/sql"

// UserRow is a users row as stored, before any formatting.
type UserRow struct {
	Name      sql.NullString
	Mobile    sql.NullString
	Email     sql.NullString
	CreatedAt sql.NullString
}

type ExportRepository interface {
	UsersNewestFirst() ([]UserRow, error)
}
