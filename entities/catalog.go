package entities

type Crop struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameGu string `gorm:"not null" json:"name_gu"`
	NameEn string `json:"name_en"`
}

type Disease struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	NameGu     string   `gorm:"not null" json:"name_gu"`
	NameEn     string   `json:"name_en"`
	Crop       string   `json:"crop"`
	Symptoms   []string `gorm:"serializer:json" json:"symptoms"`
	Treatment  []string `gorm:"serializer:json" json:"treatment"`
	Prevention []string `gorm:"serializer:json" json:"prevention"`
}

type Scheme struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
}
