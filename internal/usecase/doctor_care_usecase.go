package usecase

import (
	"context"

	"healthcare-booking/internal/converter"
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/domain/repository"
	"healthcare-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorCareUsecase interface {
	GetMyAppointments(ctx context.Context, doctorID uuid.UUID, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetPatientHistory(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.UserResponse, error)
	UpdateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateScheduleRequest) ([]dto.ScheduleEntryResponse, error)
	GetSchedule(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleEntryResponse, error)
}

type doctorCareUsecase struct {
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	scheduleRepo      repository.ScheduleRepository
	audit             service.AuditService

	// strictStatus rejects status changes out of a terminal appointment
	// instead of overwriting it.
	strictStatus bool
}

func NewDoctorCareUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	scheduleRepo repository.ScheduleRepository,
	audit service.AuditService,
	strictStatus bool,
) DoctorCareUsecase {
	return &doctorCareUsecase{
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		scheduleRepo:      scheduleRepo,
		audit:             audit,
		strictStatus:      strictStatus,
	}
}

// GetMyAppointments returns the doctor's appointments, filtered in memory
// after the fetch. Patient names ride along for display and matching.
func (u *doctorCareUsecase) GetMyAppointments(ctx context.Context, doctorID uuid.UUID, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	filtered := make([]entity.Appointment, 0, len(appointments))
	for i := range appointments {
		if filter.Matches(&appointments[i]) {
			filtered = append(filtered, appointments[i])
		}
	}

	return converter.AppointmentsToListResponse(filtered), nil
}

// GetPatientHistory returns one appointment per patient the doctor has
// seen, the most recent each. The repo already orders by date descending,
// so the first appointment encountered per patient wins.
func (u *doctorCareUsecase) GetPatientHistory(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(appointments))
	latest := make([]entity.Appointment, 0, len(appointments))
	for i := range appointments {
		if seen[appointments[i].PatientID] {
			continue
		}
		seen[appointments[i].PatientID] = true
		latest = append(latest, appointments[i])
	}

	return converter.AppointmentsToListResponse(latest), nil
}

// UpdateAppointment applies a partial update to status and clinical notes.
// Only the owning doctor may touch the appointment; a request naming
// someone else's appointment is rejected before any field is applied.
func (u *doctorCareUsecase) UpdateAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to load appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status

	if req.Status != nil {
		if err := appointment.Transition(entity.AppointmentStatus(*req.Status), doctorID, u.strictStatus); err != nil {
			return nil, err
		}
	}
	if req.DoctorNotes != nil {
		if err := appointment.Annotate(*req.DoctorNotes, doctorID); err != nil {
			return nil, err
		}
	}
	if req.Status == nil && req.DoctorNotes == nil && appointment.DoctorID != doctorID {
		return nil, entity.ErrNotOwner
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &doctorID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(),
		map[string]interface{}{"status": string(oldStatus)},
		map[string]interface{}{"status": string(appointment.Status)},
	)

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateProfile replaces the professional fields of the doctor's profile.
// Identity fields and signup credentials live on the user row and are not
// reachable from here.
func (u *doctorCareUsecase) UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.UserResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	profile.Specialty = req.Specialty
	profile.AdditionalDegrees = entity.StringList(req.AdditionalDegrees)
	profile.AcademicPosition = req.AcademicPosition
	profile.Experience = req.Experience.Int()
	profile.ConsultationFee = req.ConsultationFee.Int()
	profile.LicenseNumber = req.LicenseNumber
	profile.Qualifications = req.Qualifications
	if req.DepartmentHead != nil {
		profile.DepartmentHead = entity.DepartmentHead{
			IsDepartmentHead: req.DepartmentHead.IsDepartmentHead,
			Department:       req.DepartmentHead.Department,
			Institution:      req.DepartmentHead.Institution,
		}
	} else {
		profile.DepartmentHead = entity.DepartmentHead{}
	}

	if err := u.doctorProfileRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &doctorID, entity.AuditActionProfileUpdate, "doctor_profile", doctorID.String(), nil, map[string]interface{}{
		"specialty":      profile.Specialty,
		"license_number": profile.LicenseNumber,
	})

	return converter.DoctorToUserResponse(profile), nil
}

// UpdateSchedule replaces the doctor's full weekly schedule. Duplicate
// days collapse to the last entry supplied; invalid entries reject the
// whole request and leave the stored schedule untouched.
func (u *doctorCareUsecase) UpdateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateScheduleRequest) ([]dto.ScheduleEntryResponse, error) {
	entries := make([]entity.ScheduleEntry, len(req.Schedule))
	for i, e := range req.Schedule {
		entries[i] = entity.ScheduleEntry{
			DoctorID:  doctorID,
			Day:       e.Day,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}

	normalized, err := entity.NormalizeSchedule(entries)
	if err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.ReplaceForDoctor(ctx, doctorID, normalized); err != nil {
		u.log.Warnf("Failed to replace schedule: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &doctorID, entity.AuditActionScheduleUpdate, "schedule", doctorID.String(), nil, map[string]interface{}{
		"days": len(normalized),
	})

	return converter.ScheduleEntriesToResponses(normalized), nil
}

// GetSchedule returns the doctor's stored weekly schedule.
func (u *doctorCareUsecase) GetSchedule(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleEntryResponse, error) {
	entries, err := u.scheduleRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load schedule: %+v", err)
		return nil, err
	}
	return converter.ScheduleEntriesToResponses(entries), nil
}
