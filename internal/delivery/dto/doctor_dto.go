package dto

import (
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string and coerces it to a
// non-negative integer. Negative or unparseable input becomes 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		n = 0
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// Request DTOs

type DepartmentHeadRequest struct {
	IsDepartmentHead bool   `json:"is_department_head"`
	Department       string `json:"department"`
	Institution      string `json:"institution"`
}

// UpdateDoctorProfileRequest whitelist-replaces the professional profile
// fields. Identity fields and signup credentials are not part of the
// whitelist and cannot be changed through this request.
type UpdateDoctorProfileRequest struct {
	Specialty         string                 `json:"specialty" validate:"omitempty,max=100"`
	AdditionalDegrees []string               `json:"additional_degrees" validate:"omitempty,dive,max=255"`
	AcademicPosition  string                 `json:"academic_position" validate:"omitempty,max=100"`
	DepartmentHead    *DepartmentHeadRequest `json:"department_head" validate:"omitempty"`
	Experience        FlexInt                `json:"experience"`
	ConsultationFee   FlexInt                `json:"consultation_fee"`
	LicenseNumber     string                 `json:"license_number" validate:"omitempty,max=100"`
	Qualifications    string                 `json:"qualifications" validate:"omitempty"`
}

type ScheduleEntryRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type UpdateScheduleRequest struct {
	Schedule []ScheduleEntryRequest `json:"schedule" validate:"required,dive"`
}

// Response DTOs

type DepartmentHeadResponse struct {
	IsDepartmentHead bool   `json:"is_department_head"`
	Department       string `json:"department,omitempty"`
	Institution      string `json:"institution,omitempty"`
}

type ScheduleEntryResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorProfileResponse struct {
	MBBSFrom          string                  `json:"mbbs_from"`
	CurrentWorkplace  string                  `json:"current_workplace"`
	Specialty         string                  `json:"specialty,omitempty"`
	AdditionalDegrees []string                `json:"additional_degrees,omitempty"`
	AcademicPosition  string                  `json:"academic_position,omitempty"`
	DepartmentHead    *DepartmentHeadResponse `json:"department_head,omitempty"`
	Experience        int                     `json:"experience"`
	ConsultationFee   int                     `json:"consultation_fee"`
	LicenseNumber     string                  `json:"license_number,omitempty"`
	Qualifications    string                  `json:"qualifications,omitempty"`
	Schedule          []ScheduleEntryResponse `json:"schedule"`
}

type DoctorListResponse struct {
	Doctors []UserResponse `json:"doctors"`
	Total   int            `json:"count"`
}
