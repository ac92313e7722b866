package entities

import "time"

type Scan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	CropType    string    `json:"crop_type"`
	DiseaseName string    `json:"disease_name"`
	ImagePath   string    `json:"image_path"`
	Report      string    `json:"report,omitempty"` // raw detector text
	Source      string    `json:"source"`           // gemini|openai|mock
	ScanTime    time.Time `json:"scan_time"`
}

// ScanRecord is one (crop, disease) bucket of the admin scan report.
type ScanRecord struct {
	Crop    string `json:"crop"`
	Disease string `json:"disease"`
	Count   int64  `json:"count"`
}
