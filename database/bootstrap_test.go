package database

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
)

var testSeed = SeedOptions{AdminUsername: "admin", AdminPassword: "admin123"}

func openTemp(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(path, testSeed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db, path
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestOpenSQLite_SeedsDefaults(t *testing.T) {
	db, _ := openTemp(t)

	assert.EqualValues(t, 10, count(t, db, &entities.Crop{}))
	assert.EqualValues(t, 3, count(t, db, &entities.Disease{}))
	assert.EqualValues(t, 3, count(t, db, &entities.Scheme{}))
	assert.EqualValues(t, 1, count(t, db, &entities.Admin{}))

	var d entities.Disease
	require.NoError(t, db.Where("name_en = ?", "Wheat Rust").First(&d).Error)
	assert.Equal(t, []string{"ફફૂંદનાશક દવા"}, d.Treatment)

	var a entities.Admin
	require.NoError(t, db.First(&a).Error)
	assert.NotEqual(t, "admin123", a.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("admin123")))
}

func TestOpenSQLite_ReopenIsIdempotent(t *testing.T) {
	db, path := openTemp(t)
	require.NoError(t, db.Delete(&entities.Crop{}, "name_en = ?", "Maize").Error)
	require.NoError(t, Close(db))

	db2, err := OpenSQLite(path, SeedOptions{AdminUsername: "admin", AdminPassword: "changed"})
	require.NoError(t, err)
	defer Close(db2)

	// non-empty tables are left alone
	assert.EqualValues(t, 9, count(t, db2, &entities.Crop{}))
	assert.EqualValues(t, 1, count(t, db2, &entities.Admin{}))

	var a entities.Admin
	require.NoError(t, db2.First(&a).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("admin123")),
		"existing admin password must not be overwritten")
}

// firstReleaseSchema is the DDL the first release created on startup.
var firstReleaseSchema = []string{
	`CREATE TABLE IF NOT EXISTS users
                 (id INTEGER PRIMARY KEY AUTOINCREMENT,
                  name TEXT NOT NULL,
                  mobile TEXT UNIQUE NOT NULL,
                  email TEXT,
                  password TEXT NOT NULL,
                  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS visits
                 (id INTEGER PRIMARY KEY AUTOINCREMENT,
                  ip_address TEXT,
                  visit_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
                  date DATE DEFAULT (date('now')))`,
	`CREATE TABLE IF NOT EXISTS scans
                 (id INTEGER PRIMARY KEY AUTOINCREMENT,
                  user_id INTEGER,
                  crop_type TEXT,
                  disease_name TEXT,
                  image_path TEXT,
                  scan_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
                  FOREIGN KEY (user_id) REFERENCES users(id))`,
	`CREATE TABLE IF NOT EXISTS admin
                 (id INTEGER PRIMARY KEY AUTOINCREMENT,
                  username TEXT UNIQUE NOT NULL,
                  password TEXT NOT NULL)`,
}

func TestOpenSQLite_UpgradesFirstReleaseDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	raw, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	stmts := append(append([]string{}, firstReleaseSchema...),
		`INSERT INTO users (name, mobile, email, password, created_at) VALUES ('Old', '9999999999', '', 'secret1', '2025-12-27 05:40:00')`,
		`INSERT INTO admin (username, password) VALUES ('admin', 'legacy-pass')`,
		`INSERT INTO visits (ip_address, visit_time, date) VALUES ('10.0.0.1', '2025-12-27 05:41:00', '2025-12-27')`,
		`INSERT INTO scans (user_id, crop_type, disease_name, image_path, scan_time) VALUES (1, 'cotton', 'Bacterial Blight', 'static/uploads/a.jpg', '2025-12-27 05:42:00')`,
		`INSERT INTO scans (user_id, crop_type, disease_name, image_path, scan_time) VALUES (NULL, 'wheat', 'Rust', 'static/uploads/b.jpg', '2025-12-27 05:43:00')`,
	)
	for _, stmt := range stmts {
		require.NoError(t, raw.Exec(stmt).Error)
	}
	require.NoError(t, Close(raw))

	db, err := OpenSQLite(path, testSeed)
	require.NoError(t, err)

	var u entities.User
	require.NoError(t, db.Where("mobile = ?", "9999999999").First(&u).Error)
	assert.Equal(t, "Old", u.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))

	var a entities.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&a).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("legacy-pass")))

	for _, legacy := range []string{"users_legacy", "admin_legacy", "scans_legacy"} {
		assert.False(t, db.Migrator().HasTable(legacy), legacy)
	}
	assert.False(t, db.Migrator().HasColumn(&entities.User{}, "password"))
	assert.EqualValues(t, 1, count(t, db, &entities.Admin{}))
	assert.EqualValues(t, 1, count(t, db, &entities.Visit{}))

	// old scans keep their ids, owners and times
	var scans []entities.Scan
	require.NoError(t, db.Order("id").Find(&scans).Error)
	require.Len(t, scans, 2)
	require.NotNil(t, scans[0].UserID)
	assert.EqualValues(t, u.ID, *scans[0].UserID)
	assert.Equal(t, "Bacterial Blight", scans[0].DiseaseName)
	assert.Equal(t, "static/uploads/a.jpg", scans[0].ImagePath)
	assert.Equal(t, time.Date(2025, 12, 27, 5, 42, 0, 0, time.UTC), scans[0].ScanTime.UTC())
	assert.Nil(t, scans[1].UserID)

	var ddl string
	require.NoError(t, db.Raw(`SELECT sql FROM sqlite_master WHERE type='table' AND name='scans'`).Scan(&ddl).Error)
	assert.NotContains(t, ddl, "users_legacy")
	assert.NotContains(t, ddl, "FOREIGN KEY")

	// the upgraded store takes new scans
	uid := u.ID
	fresh := entities.Scan{UserID: &uid, CropType: "rice", DiseaseName: "Blast", ImagePath: "static/uploads/c.jpg",
		Source: "mock", ScanTime: time.Now().UTC()}
	require.NoError(t, db.Create(&fresh).Error)
	assert.EqualValues(t, 3, fresh.ID)
	assert.EqualValues(t, 3, count(t, db, &entities.Scan{}))

	// a second start leaves the rebuilt tables alone
	require.NoError(t, Close(db))
	db, err = OpenSQLite(path, testSeed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	assert.EqualValues(t, 3, count(t, db, &entities.Scan{}))
}

func TestOpenSQLite_StampsCreatedAtInUTC(t *testing.T) {
	db, _ := openTemp(t)
	u := entities.User{Name: "A", Mobile: "9000000000", PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
}
