package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table for both principal
// kinds. Email is unique per role: the same address may hold a patient
// account and a doctor account.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID           int       `gorm:"not null;index;uniqueIndex:idx_users_email_role" json:"role_id"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email_role" json:"email"`
	Password         string    `gorm:"type:text;not null" json:"-"`
	FullName         string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone            string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsVerified       bool      `gorm:"not null;default:false;index" json:"is_verified"`
	VerificationCode *string   `gorm:"type:varchar(6)" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// MarkVerified consumes the pending verification code. The code is cleared
// in the same write that flips the flag, so a code is single-use.
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.VerificationCode = nil
}

// SetVerificationCode stores a freshly issued code, superseding any
// previous one.
func (u *User) SetVerificationCode(code string) {
	u.VerificationCode = &code
}
