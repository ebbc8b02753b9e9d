package converter

import (
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to DTO.
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:            hospital.ID,
		Name:          hospital.Name,
		Address:       hospital.Address,
		Phone:         hospital.Phone,
		Specialties:   []string(hospital.Specialties),
		Rating:        hospital.Rating,
		BedsAvailable: hospital.BedsAvailable,
	}
}

// HospitalsToListResponse converts hospital entities to a list DTO.
func HospitalsToListResponse(hospitals []entity.Hospital) *dto.HospitalListResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}
}
