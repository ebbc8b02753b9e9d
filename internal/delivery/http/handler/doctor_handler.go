package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/delivery/http/middleware"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/usecase"
	"healthcare-booking/pkg/response"
	"healthcare-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	careUsecase      usecase.DoctorCareUsecase
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(
	careUsecase usecase.DoctorCareUsecase,
	directoryUsecase usecase.DoctorDirectoryUsecase,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		careUsecase:      careUsecase,
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// Search lists discoverable doctors matching ?specialty=
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.directoryUsecase.SearchDoctors(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// Get returns one doctor's public card
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateProfile replaces the authenticated doctor's professional profile
func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.careUsecase.UpdateProfile(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", user)
}

// GetSchedule returns the authenticated doctor's weekly schedule
func (h *DoctorHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedule, err := h.careUsecase.GetSchedule(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to load schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// UpdateSchedule replaces the authenticated doctor's weekly schedule
func (h *DoctorHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.careUsecase.UpdateSchedule(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnknownDay),
			errors.Is(err, entity.ErrInvalidTimeOfDay),
			errors.Is(err, entity.ErrInvalidTimeRange):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}
