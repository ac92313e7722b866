// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
)

// OpenSQLite opens the store, upgrades legacy tables, migrates the schema
// and seeds default content.
func OpenSQLite(path string, seed SeedOptions) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	// one writer for the file store
	sqlDB.SetMaxOpenConns(1)

	// Rebuild first-release tables BEFORE AutoMigrate: GORM's sqlite
	// AlterColumn cannot copy a table carrying a table-level FOREIGN KEY, and
	// would add a NOT NULL column next to a legacy plaintext one.
	// scans goes first so no FK still points at users when it is renamed.
	if err := migrateLegacyScans(db); err != nil {
		return nil, fmt.Errorf("migrate scans: %w", err)
	}
	for _, t := range []legacyTable{legacyUsers, legacyAdmin} {
		if err := migrateLegacyPasswords(db, t); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", t.name, err)
		}
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Visit{},
		&entities.Scan{},
		&entities.Crop{},
		&entities.Disease{},
		&entities.Scheme{},
		&entities.Admin{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	if err := Seed(db, seed); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type legacyTable struct {
	name    string
	model   any
	columns string // shared columns, copied as-is
}

var (
	legacyUsers = legacyTable{name: "users", model: &entities.User{}, columns: "id, name, mobile, email, created_at"}
	legacyAdmin = legacyTable{name: "admin", model: &entities.Admin{}, columns: "id, username"}
)

type colInfo struct {
	Cid       int
	Name      string
	Type      string
	NotNull   int
	DfltValue sql.NullString
	Pk        int
}

// tableColumns returns the lower-cased column names of table, or nil when
// the table does not exist.
func tableColumns(db *gorm.DB, table string) (map[string]bool, error) {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&tbl).Error; err != nil {
		return nil, fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil, nil
	}
	var cols []colInfo
	if err := db.Raw(fmt.Sprintf(`PRAGMA table_info(%s)`, table)).Scan(&cols).Error; err != nil {
		return nil, fmt.Errorf("table_info: %w", err)
	}
	out := make(map[string]bool, len(cols))
	for _, c := range cols {
		out[strings.ToLower(c.Name)] = true
	}
	return out, nil
}

// migrateLegacyPasswords rebuilds a table that still stores a plaintext
// `password` column (schema of the first release) into the hashed layout.
func migrateLegacyPasswords(db *gorm.DB, t legacyTable) error {
	cols, err := tableColumns(db, t.name)
	if err != nil || cols == nil {
		return err
	}
	if !cols["password"] || cols["password_hash"] {
		return nil
	}

	legacy := t.name + "_legacy"
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf(`ALTER TABLE %s RENAME TO %s`, t.name, legacy)).Error; err != nil {
			return err
		}
		if err := tx.Migrator().CreateTable(t.model); err != nil {
			return err
		}
		copySQL := fmt.Sprintf(`INSERT INTO %s (%s, password_hash) SELECT %s, password FROM %s`,
			t.name, t.columns, t.columns, legacy)
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}

		type row struct {
			ID           uint
			PasswordHash string
		}
		var rows []row
		if err := tx.Raw(fmt.Sprintf(`SELECT id, password_hash FROM %s`, t.name)).Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			h, err := bcrypt.GenerateFromPassword([]byte(r.PasswordHash), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash row %d: %w", r.ID, err)
			}
			if err := tx.Exec(fmt.Sprintf(`UPDATE %s SET password_hash = ? WHERE id = ?`, t.name), string(h), r.ID).Error; err != nil {
				return err
			}
		}
		return tx.Exec(fmt.Sprintf(`DROP TABLE %s`, legacy)).Error
	})
}

const legacyScanColumns = "id, user_id, crop_type, disease_name, image_path, scan_time"

// migrateLegacyScans rebuilds a first-release scans table (no report/source
// columns, table-level FK on users) into the current layout, keeping ids
// and scan times.
func migrateLegacyScans(db *gorm.DB) error {
	cols, err := tableColumns(db, "scans")
	if err != nil || cols == nil {
		return err
	}
	if cols["source"] {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE scans RENAME TO scans_legacy`).Error; err != nil {
			return err
		}
		if err := tx.Migrator().CreateTable(&entities.Scan{}); err != nil {
			return err
		}
		copySQL := fmt.Sprintf(`INSERT INTO scans (%s, report, source) SELECT %s, '', '' FROM scans_legacy`,
			legacyScanColumns, legacyScanColumns)
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		return tx.Exec(`DROP TABLE scans_legacy`).Error
	})
}
