package converter

import (
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to DTO. The patient
// name is included only when the relation was preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.FullName,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		ConsultationFee: appointment.ConsultationFee,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.DoctorNotes != nil {
		response.DoctorNotes = *appointment.DoctorNotes
	}

	return response
}

// AppointmentsToListResponse converts appointment entities to a list DTO.
func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
