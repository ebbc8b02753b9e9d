package entity

import "time"

// Hospital is a static directory listing shown to patients while picking
// where to book.
type Hospital struct {
	ID            string     `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Address       string     `gorm:"type:text" json:"address"`
	Phone         string     `gorm:"type:varchar(30)" json:"phone"`
	Specialties   StringList `gorm:"type:jsonb" json:"specialties"`
	Rating        float64    `gorm:"type:decimal(2,1)" json:"rating"`
	BedsAvailable int        `gorm:"not null;default:0" json:"beds_available"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
