package usecase

import (
	"context"
	"errors"

	"healthcare-booking/internal/converter"
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/domain/repository"
	"healthcare-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type PatientBookingUsecase interface {
	BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type patientBookingUsecase struct {
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	audit             service.AuditService
}

func NewPatientBookingUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	audit service.AuditService,
) PatientBookingUsecase {
	return &patientBookingUsecase{
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		audit:             audit,
	}
}

// BookAppointment creates a scheduled appointment for the patient. The
// doctor's current consultation fee is copied onto the appointment so a
// later fee change never touches existing bookings.
func (u *patientBookingUsecase) BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctorProfile, err := u.doctorProfileRepo.FindByUserID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		ConsultationFee: doctorProfile.ConsultationFee,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id":        appointment.DoctorID.String(),
		"appointment_date": appointment.AppointmentDate,
		"appointment_time": appointment.AppointmentTime,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns the patient's bookings, most recent date
// first.
func (u *patientBookingUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}
