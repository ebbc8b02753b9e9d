package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentTransition(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name       string
		current    AppointmentStatus
		next       AppointmentStatus
		actor      uuid.UUID
		strict     bool
		wantErr    error
		wantStatus AppointmentStatus
	}{
		{
			name:       "doctor completes a scheduled appointment",
			current:    AppointmentStatusScheduled,
			next:       AppointmentStatusCompleted,
			actor:      owner,
			wantStatus: AppointmentStatusCompleted,
		},
		{
			name:       "doctor cancels a scheduled appointment",
			current:    AppointmentStatusScheduled,
			next:       AppointmentStatusCancelled,
			actor:      owner,
			wantStatus: AppointmentStatusCancelled,
		},
		{
			name:       "re-setting the same status is idempotent",
			current:    AppointmentStatusCompleted,
			next:       AppointmentStatusCompleted,
			actor:      owner,
			wantStatus: AppointmentStatusCompleted,
		},
		{
			name:       "terminal status can be corrected by default",
			current:    AppointmentStatusCancelled,
			next:       AppointmentStatusCompleted,
			actor:      owner,
			wantStatus: AppointmentStatusCompleted,
		},
		{
			name:       "strict mode rejects leaving a terminal status",
			current:    AppointmentStatusCompleted,
			next:       AppointmentStatusScheduled,
			actor:      owner,
			strict:     true,
			wantErr:    ErrTerminalStatus,
			wantStatus: AppointmentStatusCompleted,
		},
		{
			name:       "strict mode still allows the idempotent overwrite",
			current:    AppointmentStatusCompleted,
			next:       AppointmentStatusCompleted,
			actor:      owner,
			strict:     true,
			wantStatus: AppointmentStatusCompleted,
		},
		{
			name:       "unknown status is rejected",
			current:    AppointmentStatusScheduled,
			next:       AppointmentStatus("archived"),
			actor:      owner,
			wantErr:    ErrInvalidStatus,
			wantStatus: AppointmentStatusScheduled,
		},
		{
			name:       "another doctor cannot transition",
			current:    AppointmentStatusScheduled,
			next:       AppointmentStatusCompleted,
			actor:      stranger,
			wantErr:    ErrNotOwner,
			wantStatus: AppointmentStatusScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := &Appointment{DoctorID: owner, Status: tt.current}
			err := appointment.Transition(tt.next, tt.actor, tt.strict)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, appointment.Status)
		})
	}
}

func TestAppointmentAnnotate(t *testing.T) {
	owner := uuid.New()

	t.Run("owner overwrites notes in full", func(t *testing.T) {
		old := "initial assessment"
		appointment := &Appointment{DoctorID: owner, DoctorNotes: &old}

		require.NoError(t, appointment.Annotate("follow up in two weeks", owner))
		require.NotNil(t, appointment.DoctorNotes)
		assert.Equal(t, "follow up in two weeks", *appointment.DoctorNotes)
	})

	t.Run("empty notes clear the field", func(t *testing.T) {
		old := "initial assessment"
		appointment := &Appointment{DoctorID: owner, DoctorNotes: &old}

		require.NoError(t, appointment.Annotate("", owner))
		require.NotNil(t, appointment.DoctorNotes)
		assert.Empty(t, *appointment.DoctorNotes)
	})

	t.Run("non-owner leaves the appointment untouched", func(t *testing.T) {
		old := "initial assessment"
		appointment := &Appointment{DoctorID: owner, DoctorNotes: &old}

		err := appointment.Annotate("tampered", uuid.New())
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, "initial assessment", *appointment.DoctorNotes)
	})
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.Valid())
	assert.True(t, AppointmentStatusCompleted.Valid())
	assert.True(t, AppointmentStatusCancelled.Valid())
	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("pending").Valid())
}
