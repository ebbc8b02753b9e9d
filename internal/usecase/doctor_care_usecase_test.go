package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type careTestEnv struct {
	store   *fakeStore
	usecase DoctorCareUsecase
}

func newCareTestEnv(t *testing.T, strict bool) *careTestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := newFakeStore()
	return &careTestEnv{
		store: store,
		usecase: NewDoctorCareUsecase(
			log,
			&fakeAppointmentRepo{store: store},
			&fakeDoctorProfileRepo{store: store},
			&fakeScheduleRepo{store: store},
			service.NewAuditService(log, &fakeAuditLogRepo{store: store}),
			strict,
		),
	}
}

func (e *careTestEnv) addDoctor(t *testing.T) uuid.UUID {
	t.Helper()
	profile := &entity.DoctorProfile{
		MBBSFrom:         "Metropolis Medical College",
		CurrentWorkplace: "City General Hospital",
		User: entity.User{
			Email:    uuid.NewString() + "@example.com",
			FullName: "Dr. Who",
			RoleID:   entity.RoleIDDoctor,
		},
	}
	require.NoError(t, (&fakeDoctorProfileRepo{store: e.store}).Create(context.Background(), profile))
	return profile.UserID
}

func (e *careTestEnv) addAppointment(t *testing.T, doctorID uuid.UUID, patientName, date string, status entity.AppointmentStatus) *entity.Appointment {
	t.Helper()
	user := &entity.User{Email: uuid.NewString() + "@example.com", FullName: patientName, RoleID: entity.RoleIDPatient}
	e.store.mu.Lock()
	require.NoError(t, e.store.addUser(user))
	e.store.mu.Unlock()

	appointment := &entity.Appointment{
		PatientID:       user.ID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: "10:00",
		Reason:          "Consultation",
		Status:          status,
	}
	require.NoError(t, (&fakeAppointmentRepo{store: e.store}).Create(context.Background(), appointment))
	return appointment
}

func TestDoctorAppointmentsFilter(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)

	env.addAppointment(t, doctorID, "Jane Doe", "2026-09-01", entity.AppointmentStatusScheduled)
	env.addAppointment(t, doctorID, "John Smith", "2026-09-02", entity.AppointmentStatusCompleted)
	env.addAppointment(t, uuid.New(), "Someone Else", "2026-09-03", entity.AppointmentStatusScheduled)

	t.Run("no filter returns all own appointments", func(t *testing.T) {
		list, err := env.usecase.GetMyAppointments(ctx, doctorID, entity.AppointmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
	})

	t.Run("status filter", func(t *testing.T) {
		list, err := env.usecase.GetMyAppointments(ctx, doctorID, entity.AppointmentFilter{Status: "completed"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "John Smith", list.Appointments[0].PatientName)
	})

	t.Run("query filter against patient name", func(t *testing.T) {
		list, err := env.usecase.GetMyAppointments(ctx, doctorID, entity.AppointmentFilter{Query: "jane"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "Jane Doe", list.Appointments[0].PatientName)
	})
}

func TestPatientHistoryNewestPerPatient(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)

	first := env.addAppointment(t, doctorID, "Jane Doe", "2026-01-10", entity.AppointmentStatusCompleted)
	later := &entity.Appointment{
		PatientID:       first.PatientID,
		DoctorID:        doctorID,
		AppointmentDate: "2026-06-20",
		AppointmentTime: "11:00",
		Reason:          "Follow-up",
		Status:          entity.AppointmentStatusScheduled,
	}
	require.NoError(t, (&fakeAppointmentRepo{store: env.store}).Create(ctx, later))
	env.addAppointment(t, doctorID, "John Smith", "2026-03-15", entity.AppointmentStatusCompleted)

	history, err := env.usecase.GetPatientHistory(ctx, doctorID)
	require.NoError(t, err)
	require.Equal(t, 2, history.Total)

	for _, item := range history.Appointments {
		if item.PatientID == first.PatientID {
			assert.Equal(t, "2026-06-20", item.AppointmentDate)
		}
	}
}

func TestUpdateAppointment(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)
	appointment := env.addAppointment(t, doctorID, "Jane Doe", "2026-09-01", entity.AppointmentStatusScheduled)

	t.Run("partial update of status only", func(t *testing.T) {
		status := "completed"
		updated, err := env.usecase.UpdateAppointment(ctx, doctorID, appointment.ID, &dto.UpdateAppointmentRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)
	})

	t.Run("partial update of notes only leaves status alone", func(t *testing.T) {
		notes := "patient recovering well"
		updated, err := env.usecase.UpdateAppointment(ctx, doctorID, appointment.ID, &dto.UpdateAppointmentRequest{DoctorNotes: &notes})
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)
		assert.Equal(t, "patient recovering well", updated.DoctorNotes)
	})

	t.Run("another doctor is rejected without mutation", func(t *testing.T) {
		status := "cancelled"
		_, err := env.usecase.UpdateAppointment(ctx, uuid.New(), appointment.ID, &dto.UpdateAppointmentRequest{Status: &status})
		assert.ErrorIs(t, err, entity.ErrNotOwner)

		stored, err := (&fakeAppointmentRepo{store: env.store}).FindByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		status := "cancelled"
		_, err := env.usecase.UpdateAppointment(ctx, doctorID, uuid.New(), &dto.UpdateAppointmentRequest{Status: &status})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestUpdateAppointmentStrictMode(t *testing.T) {
	env := newCareTestEnv(t, true)
	ctx := context.Background()
	doctorID := env.addDoctor(t)
	appointment := env.addAppointment(t, doctorID, "Jane Doe", "2026-09-01", entity.AppointmentStatusCancelled)

	status := "completed"
	_, err := env.usecase.UpdateAppointment(ctx, doctorID, appointment.ID, &dto.UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, entity.ErrTerminalStatus)
}

func TestUpdateProfile(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)

	// Experience arrives as a string and must coerce to an int
	var req dto.UpdateDoctorProfileRequest
	payload := `{"specialty":"Cardiology","experience":"7","consultation_fee":150,"license_number":"LIC-1234","additional_degrees":["FCPS"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	user, err := env.usecase.UpdateProfile(ctx, doctorID, &req)
	require.NoError(t, err)
	require.NotNil(t, user.DoctorProfile)

	assert.Equal(t, "Cardiology", user.DoctorProfile.Specialty)
	assert.Equal(t, 7, user.DoctorProfile.Experience)
	assert.Equal(t, 150, user.DoctorProfile.ConsultationFee)
	assert.Equal(t, []string{"FCPS"}, user.DoctorProfile.AdditionalDegrees)

	// Signup fields survive the professional-field replacement
	assert.Equal(t, "Metropolis Medical College", user.DoctorProfile.MBBSFrom)
}

func TestUpdateProfileNegativeNumbersCoerceToZero(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)

	var req dto.UpdateDoctorProfileRequest
	payload := `{"experience":-3,"consultation_fee":"not a number"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	user, err := env.usecase.UpdateProfile(ctx, doctorID, &req)
	require.NoError(t, err)
	assert.Equal(t, 0, user.DoctorProfile.Experience)
	assert.Equal(t, 0, user.DoctorProfile.ConsultationFee)
}

func TestUpdateSchedule(t *testing.T) {
	env := newCareTestEnv(t, false)
	ctx := context.Background()
	doctorID := env.addDoctor(t)

	t.Run("duplicate days collapse, last wins", func(t *testing.T) {
		schedule, err := env.usecase.UpdateSchedule(ctx, doctorID, &dto.UpdateScheduleRequest{
			Schedule: []dto.ScheduleEntryRequest{
				{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
				{Day: "Monday", StartTime: "14:00", EndTime: "18:00"},
				{Day: "Friday", StartTime: "10:00", EndTime: "13:00"},
			},
		})
		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.Equal(t, "Monday", schedule[0].Day)
		assert.Equal(t, "14:00", schedule[0].StartTime)
	})

	t.Run("replacement drops days no longer listed", func(t *testing.T) {
		schedule, err := env.usecase.UpdateSchedule(ctx, doctorID, &dto.UpdateScheduleRequest{
			Schedule: []dto.ScheduleEntryRequest{
				{Day: "Wednesday", StartTime: "08:00", EndTime: "16:00"},
			},
		})
		require.NoError(t, err)
		require.Len(t, schedule, 1)
		assert.Equal(t, "Wednesday", schedule[0].Day)

		stored, err := env.usecase.GetSchedule(ctx, doctorID)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("invalid entry leaves the stored schedule untouched", func(t *testing.T) {
		_, err := env.usecase.UpdateSchedule(ctx, doctorID, &dto.UpdateScheduleRequest{
			Schedule: []dto.ScheduleEntryRequest{
				{Day: "Thursday", StartTime: "18:00", EndTime: "09:00"},
			},
		})
		assert.ErrorIs(t, err, entity.ErrInvalidTimeRange)

		stored, err := env.usecase.GetSchedule(ctx, doctorID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Wednesday", stored[0].Day)
	})
}
