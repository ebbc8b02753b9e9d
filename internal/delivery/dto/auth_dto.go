package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`

	DateOfBirth string                   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup  string                   `json:"blood_group" validate:"omitempty,max=5"`
	Address     string                   `json:"address" validate:"omitempty"`
	Emergency   *EmergencyContactRequest `json:"emergency_contact" validate:"omitempty"`
}

type EmergencyContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type RegisterDoctorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`

	MBBSFrom         string `json:"mbbs_from" validate:"required"`
	CurrentWorkplace string `json:"current_workplace" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient doctor"`
}

type VerifyEmailRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=patient doctor"`
}

// Response DTOs

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"name"`
	Phone          string                  `json:"phone,omitempty"`
	Role           string                  `json:"role"`
	IsVerified     bool                    `json:"is_verified"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type PatientProfileResponse struct {
	DateOfBirth      string                    `json:"date_of_birth,omitempty"`
	BloodGroup       string                    `json:"blood_group,omitempty"`
	Address          string                    `json:"address,omitempty"`
	EmergencyContact *EmergencyContactResponse `json:"emergency_contact,omitempty"`
}

type EmergencyContactResponse struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
}
