package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore is a shared in-memory backing store for the fake repositories.
type fakeStore struct {
	mu              sync.Mutex
	users           map[uuid.UUID]*entity.User
	doctorProfiles  map[uuid.UUID]*entity.DoctorProfile
	patientProfiles map[uuid.UUID]*entity.PatientProfile
	appointments    map[uuid.UUID]*entity.Appointment
	schedules       map[uuid.UUID][]entity.ScheduleEntry
	auditLogs       []entity.AuditLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:           make(map[uuid.UUID]*entity.User),
		doctorProfiles:  make(map[uuid.UUID]*entity.DoctorProfile),
		patientProfiles: make(map[uuid.UUID]*entity.PatientProfile),
		appointments:    make(map[uuid.UUID]*entity.Appointment),
		schedules:       make(map[uuid.UUID][]entity.ScheduleEntry),
	}
}

func (s *fakeStore) addUser(user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, existing := range s.users {
		if existing.Email == user.Email && existing.RoleID == user.RoleID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email_role"}
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// fakeUserRepo implements repository.UserRepository.
type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailAndRole(ctx context.Context, email string, roleID int) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email && user.RoleID == roleID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByVerificationCode(ctx context.Context, code string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.VerificationCode != nil && *user.VerificationCode == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

// fakeDoctorProfileRepo implements repository.DoctorProfileRepository.
type fakeDoctorProfileRepo struct{ store *fakeStore }

func (r *fakeDoctorProfileRepo) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.addUser(&profile.User); err != nil {
		return err
	}
	profile.UserID = profile.User.ID
	copied := *profile
	r.store.doctorProfiles[profile.UserID] = &copied
	return nil
}

func (r *fakeDoctorProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.doctorProfiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	if user, ok := r.store.users[userID]; ok {
		copied.User = *user
	}
	copied.ScheduleEntries = r.store.schedules[userID]
	return &copied, nil
}

func (r *fakeDoctorProfileRepo) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *profile
	r.store.doctorProfiles[profile.UserID] = &copied
	return nil
}

func (r *fakeDoctorProfileRepo) SearchBySpecialty(ctx context.Context, specialty string) ([]entity.DoctorProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var matches []entity.DoctorProfile
	for _, profile := range r.store.doctorProfiles {
		if !profile.IsComplete() {
			continue
		}
		if specialty != "" && !containsFold(profile.Specialty, specialty) {
			continue
		}
		copied := *profile
		if user, ok := r.store.users[profile.UserID]; ok {
			copied.User = *user
		}
		matches = append(matches, copied)
	}
	return matches, nil
}

// fakePatientProfileRepo implements repository.PatientProfileRepository.
type fakePatientProfileRepo struct{ store *fakeStore }

func (r *fakePatientProfileRepo) Create(ctx context.Context, profile *entity.PatientProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.addUser(&profile.User); err != nil {
		return err
	}
	profile.UserID = profile.User.ID
	copied := *profile
	r.store.patientProfiles[profile.UserID] = &copied
	return nil
}

func (r *fakePatientProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profile, ok := r.store.patientProfiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakePatientProfileRepo) Update(ctx context.Context, profile *entity.PatientProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *profile
	r.store.patientProfiles[profile.UserID] = &copied
	return nil
}

// fakeAppointmentRepo implements repository.AppointmentRepository.
type fakeAppointmentRepo struct{ store *fakeStore }

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	copied := *appointment
	r.store.appointments[appointment.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appointment, ok := r.store.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	if user, ok := r.store.users[appointment.PatientID]; ok {
		copied.Patient = *user
	}
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.store.appointments {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.store.appointments {
		if appointment.DoctorID == doctorID {
			copied := *appointment
			if user, ok := r.store.users[appointment.PatientID]; ok {
				copied.Patient = *user
			}
			result = append(result, copied)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *appointment
	r.store.appointments[appointment.ID] = &copied
	return nil
}

// fakeScheduleRepo implements repository.ScheduleRepository.
type fakeScheduleRepo struct{ store *fakeStore }

func (r *fakeScheduleRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ScheduleEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]entity.ScheduleEntry(nil), r.store.schedules[doctorID]...), nil
}

func (r *fakeScheduleRepo) ReplaceForDoctor(ctx context.Context, doctorID uuid.UUID, entries []entity.ScheduleEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.schedules[doctorID] = append([]entity.ScheduleEntry(nil), entries...)
	return nil
}

// fakeAuditLogRepo implements repository.AuditLogRepository.
type fakeAuditLogRepo struct{ store *fakeStore }

func (r *fakeAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.auditLogs = append(r.store.auditLogs, *log)
	return nil
}

func (r *fakeAuditLogRepo) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]entity.AuditLog(nil), r.store.auditLogs...), nil
}

// fakeSessionStore implements service.SessionStore.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]bool)}
}

func (s *fakeSessionStore) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *fakeSessionStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeSessionStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[s.key(userID, tokenID)], nil
}

func (s *fakeSessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, s.key(userID, tokenID))
	return nil
}

// fakeMailer implements mail.Mailer and records every send.
type fakeMailer struct {
	mu    sync.Mutex
	sends []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *fakeMailer) sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sends...)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortByDateDesc(appointments []entity.Appointment) {
	for i := 1; i < len(appointments); i++ {
		for j := i; j > 0 && appointments[j].AppointmentDate > appointments[j-1].AppointmentDate; j-- {
			appointments[j], appointments[j-1] = appointments[j-1], appointments[j]
		}
	}
}
