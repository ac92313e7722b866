package entities

import "time"

type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IPAddress string    `gorm:"column:ip_address" json:"ip_address"`
	VisitTime time.Time `gorm:"index" json:"visit_time"`
	Date      string    `json:"date"` // YYYY-MM-DD
}
