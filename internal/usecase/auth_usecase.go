package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-booking/internal/converter"
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/domain/repository"
	"healthcare-booking/internal/infrastructure/mail"
	"healthcare-booking/internal/service"
	"healthcare-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already registered for this role")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotVerified     = errors.New("email is not verified")
	ErrInvalidOrExpiredCode = errors.New("invalid verification code")
	ErrAlreadyVerified      = errors.New("email is already verified")
	ErrUserNotFound         = errors.New("user not found")
	ErrUnknownRole          = errors.New("unknown role")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error)
	ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) error
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	jwtService         *jwt.JWTService
	sessionStore       service.SessionStore
	mailer             mail.Mailer
	audit              service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
	mailer mail.Mailer,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		jwtService:         jwtService,
		sessionStore:       sessionStore,
		mailer:             mailer,
		audit:              audit,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	user, err := u.newUnverifiedUser(ctx, req.Email, req.Password, req.FullName, req.Phone, entity.RoleIDPatient)
	if err != nil {
		return nil, err
	}

	// Create patient profile together with the user row
	patientProfile := &entity.PatientProfile{
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
		User:       *user,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patientProfile.DateOfBirth = &dob
	}
	if req.Emergency != nil {
		patientProfile.EmergencyContact = entity.EmergencyContact{
			Name:         req.Emergency.Name,
			Phone:        req.Emergency.Phone,
			Relationship: req.Emergency.Relationship,
		}
	}

	if err := u.patientProfileRepo.Create(ctx, patientProfile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	created := patientProfile.User
	created.PatientProfile = patientProfile
	return u.finishRegistration(ctx, &created)
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AuthResponse, error) {
	user, err := u.newUnverifiedUser(ctx, req.Email, req.Password, req.FullName, req.Phone, entity.RoleIDDoctor)
	if err != nil {
		return nil, err
	}

	// Create doctor profile together with the user row
	doctorProfile := &entity.DoctorProfile{
		MBBSFrom:         req.MBBSFrom,
		CurrentWorkplace: req.CurrentWorkplace,
		User:             *user,
	}

	if err := u.doctorProfileRepo.Create(ctx, doctorProfile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	created := doctorProfile.User
	created.DoctorProfile = doctorProfile
	return u.finishRegistration(ctx, &created)
}

// newUnverifiedUser builds a user with a hashed password and a fresh
// verification code. The caller persists it through the profile repo.
func (u *authUsecase) newUnverifiedUser(ctx context.Context, email, password, fullName, phone string, roleID int) (*entity.User, error) {
	existing, err := u.userRepo.FindByEmailAndRole(ctx, email, roleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	code, err := service.GenerateOTP()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Phone:    phone,
		RoleID:   roleID,
	}
	user.SetVerificationCode(code)

	return user, nil
}

// finishRegistration dispatches the verification mail, records the audit
// entry and mints the initial session. The account stays unverified until
// the code is confirmed; login is gated on the flag, not this session.
func (u *authUsecase) finishRegistration(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	if user.VerificationCode != nil {
		subject, body := mail.VerificationEmail(*user.VerificationCode)
		u.sendMail(user.Email, subject, body)
	}

	u.audit.LogCreate(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"email": user.Email,
		"role":  entity.RoleName(user.RoleID),
	})

	return u.newSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	roleID := entity.RoleID(req.Role)
	if roleID == 0 {
		return nil, ErrUnknownRole
	}

	user, err := u.userRepo.FindByEmailAndRole(ctx, req.Email, roleID)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	u.attachProfile(ctx, user)

	u.audit.LogCreate(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), map[string]interface{}{
		"role": req.Role,
	})

	return u.newSession(ctx, user)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByVerificationCode(ctx, req.Code)
	if err != nil {
		u.log.Warnf("Failed to find user by verification code: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidOrExpiredCode
	}

	user.MarkVerified()
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to mark user verified: %+v", err)
		return nil, err
	}

	subject, body := mail.WelcomeEmail(user.FullName)
	u.sendMail(user.Email, subject, body)

	u.audit.LogUpdate(ctx, &user.ID, entity.AuditActionUserVerify, "user", user.ID.String(),
		map[string]interface{}{"is_verified": false},
		map[string]interface{}{"is_verified": true},
	)

	u.attachProfile(ctx, user)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) error {
	roleID := entity.RoleID(req.Role)
	if roleID == 0 {
		return ErrUnknownRole
	}

	user, err := u.userRepo.FindByEmailAndRole(ctx, req.Email, roleID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	code, err := service.GenerateOTP()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return err
	}
	user.SetVerificationCode(code)
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to store verification code: %+v", err)
		return err
	}

	subject, body := mail.VerificationEmail(code)
	u.sendMail(user.Email, subject, body)
	return nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.sessionStore.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}

	u.audit.LogUpdate(ctx, &userID, entity.AuditActionUserLogout, "session", tokenID, nil, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	u.attachProfile(ctx, user)
	return converter.UserToResponse(user), nil
}

// attachProfile loads the role-specific profile onto the user. Best
// effort: a missing or unreadable profile leaves the user bare.
func (u *authUsecase) attachProfile(ctx context.Context, user *entity.User) {
	switch user.RoleID {
	case entity.RoleIDDoctor:
		profile, err := u.doctorProfileRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load doctor profile: %+v", err)
			return
		}
		user.DoctorProfile = profile
	case entity.RoleIDPatient:
		profile, err := u.patientProfileRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return
		}
		user.PatientProfile = profile
	}
}

func (u *authUsecase) newSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	role := entity.RoleName(user.RoleID)
	token, tokenID, err := u.jwtService.GenerateSessionToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.Save(ctx, user.ID, tokenID, u.jwtService.GetSessionExpiry()); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		User:      converter.UserToResponse(user),
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetSessionExpiry().Seconds()),
	}, nil
}

// sendMail delivers in the background. A failed send is logged and never
// fails the operation that triggered it.
func (u *authUsecase) sendMail(to, subject, body string) {
	go func() {
		if err := u.mailer.Send(to, subject, body); err != nil {
			u.log.Warnf("Failed to send mail to %s: %+v", to, err)
		}
	}()
}
