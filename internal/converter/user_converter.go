package converter

import (
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The
// credential hash and any pending verification code are never serialized.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Phone:      user.Phone,
		Role:       entity.RoleName(user.RoleID),
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}
	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}

	return response
}

// DoctorProfileToResponse converts a DoctorProfile entity to DTO.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorProfileResponse{
		MBBSFrom:          profile.MBBSFrom,
		CurrentWorkplace:  profile.CurrentWorkplace,
		Specialty:         profile.Specialty,
		AdditionalDegrees: []string(profile.AdditionalDegrees),
		AcademicPosition:  profile.AcademicPosition,
		Experience:        profile.Experience,
		ConsultationFee:   profile.ConsultationFee,
		LicenseNumber:     profile.LicenseNumber,
		Qualifications:    profile.Qualifications,
		Schedule:          ScheduleEntriesToResponses(profile.ScheduleEntries),
	}

	if profile.DepartmentHead.IsDepartmentHead || profile.DepartmentHead.Department != "" {
		response.DepartmentHead = &dto.DepartmentHeadResponse{
			IsDepartmentHead: profile.DepartmentHead.IsDepartmentHead,
			Department:       profile.DepartmentHead.Department,
			Institution:      profile.DepartmentHead.Institution,
		}
	}

	return response
}

// DoctorToUserResponse flattens a DoctorProfile with its preloaded User
// into a single UserResponse.
func DoctorToUserResponse(profile *entity.DoctorProfile) *dto.UserResponse {
	if profile == nil {
		return nil
	}
	user := profile.User
	user.DoctorProfile = profile
	return UserToResponse(&user)
}

// PatientProfileToResponse converts a PatientProfile entity to DTO.
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		BloodGroup: profile.BloodGroup,
		Address:    profile.Address,
	}
	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	if profile.EmergencyContact.Name != "" || profile.EmergencyContact.Phone != "" {
		response.EmergencyContact = &dto.EmergencyContactResponse{
			Name:         profile.EmergencyContact.Name,
			Phone:        profile.EmergencyContact.Phone,
			Relationship: profile.EmergencyContact.Relationship,
		}
	}

	return response
}

// ScheduleEntriesToResponses converts schedule entries to DTOs.
func ScheduleEntriesToResponses(entries []entity.ScheduleEntry) []dto.ScheduleEntryResponse {
	responses := make([]dto.ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = dto.ScheduleEntryResponse{
			Day:       e.Day,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}
	return responses
}
