package usecase

import (
	"context"
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

type bookingTestEnv struct {
	store   *fakeStore
	usecase PatientBookingUsecase
}

func newBookingTestEnv(t *testing.T) *bookingTestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := newFakeStore()
	return &bookingTestEnv{
		store: store,
		usecase: NewPatientBookingUsecase(
			log,
			&fakeAppointmentRepo{store: store},
			&fakeDoctorProfileRepo{store: store},
			service.NewAuditService(log, &fakeAuditLogRepo{store: store}),
		),
	}
}

func (e *bookingTestEnv) addDoctor(t *testing.T, fee int) uuid.UUID {
	t.Helper()
	profile := &entity.DoctorProfile{
		MBBSFrom:         "Metropolis Medical College",
		CurrentWorkplace: "City General Hospital",
		ConsultationFee:  fee,
		User: entity.User{
			Email:    uuid.NewString() + "@example.com",
			FullName: "Dr. Who",
			RoleID:   entity.RoleIDDoctor,
		},
	}
	require.NoError(t, (&fakeDoctorProfileRepo{store: e.store}).Create(context.Background(), profile))
	return profile.UserID
}

func TestBookAppointment(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()
	patientID := uuid.New()
	doctorID := env.addDoctor(t, 200)

	appointment, err := env.usecase.BookAppointment(ctx, patientID, &dto.CreateAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentDate: "2026-09-14",
		AppointmentTime: "10:30",
		Reason:          "Chest pain",
	})
	require.NoError(t, err)

	assert.Equal(t, "scheduled", appointment.Status)
	assert.Equal(t, patientID, appointment.PatientID)
	assert.Equal(t, 200, appointment.ConsultationFee)
	assert.Equal(t, "2026-09-14", appointment.AppointmentDate)
}

func TestBookAppointmentFeeSnapshot(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()
	patientID := uuid.New()
	doctorID := env.addDoctor(t, 200)

	appointment, err := env.usecase.BookAppointment(ctx, patientID, &dto.CreateAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentDate: "2026-09-14",
		AppointmentTime: "10:30",
		Reason:          "Chest pain",
	})
	require.NoError(t, err)

	// Raising the fee afterwards must not touch the existing booking
	profileRepo := &fakeDoctorProfileRepo{store: env.store}
	profile, err := profileRepo.FindByUserID(ctx, doctorID)
	require.NoError(t, err)
	profile.ConsultationFee = 500
	require.NoError(t, profileRepo.Update(ctx, profile))

	list, err := env.usecase.GetMyAppointments(ctx, patientID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 200, list.Appointments[0].ConsultationFee)
	assert.Equal(t, appointment.ID, list.Appointments[0].ID)
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.usecase.BookAppointment(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
		DoctorID:        uuid.New(),
		AppointmentDate: "2026-09-14",
		AppointmentTime: "10:30",
		Reason:          "Chest pain",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetMyAppointmentsOrder(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()
	patientID := uuid.New()
	doctorID := env.addDoctor(t, 100)

	for _, date := range []string{"2026-03-01", "2026-11-20", "2026-07-15"} {
		_, err := env.usecase.BookAppointment(ctx, patientID, &dto.CreateAppointmentRequest{
			DoctorID:        doctorID,
			AppointmentDate: date,
			AppointmentTime: "09:00",
			Reason:          "Checkup",
		})
		require.NoError(t, err)
	}

	list, err := env.usecase.GetMyAppointments(ctx, patientID)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "2026-11-20", list.Appointments[0].AppointmentDate)
	assert.Equal(t, "2026-07-15", list.Appointments[1].AppointmentDate)
	assert.Equal(t, "2026-03-01", list.Appointments[2].AppointmentDate)
}
