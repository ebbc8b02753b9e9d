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

type AppointmentHandler struct {
	bookingUsecase usecase.PatientBookingUsecase
	careUsecase    usecase.DoctorCareUsecase
	validator      *validator.CustomValidator
}

func NewAppointmentHandler(
	bookingUsecase usecase.PatientBookingUsecase,
	careUsecase usecase.DoctorCareUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase: bookingUsecase,
		careUsecase:    careUsecase,
		validator:      validator,
	}
}

// Create books an appointment for the authenticated patient
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.BookAppointment(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// ListMine returns the authenticated patient's appointments
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.bookingUsecase.GetMyAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListForDoctor returns the authenticated doctor's appointments,
// optionally filtered by ?status= and ?q=
func (h *AppointmentHandler) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter := entity.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}

	appointments, err := h.careUsecase.GetMyAppointments(r.Context(), doctorID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// PatientHistory returns the doctor's distinct patients, newest visit each
func (h *AppointmentHandler) PatientHistory(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	history, err := h.careUsecase.GetPatientHistory(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to load patient history")
		return
	}

	response.Success(w, http.StatusOK, "Patient history retrieved successfully", history)
}

// Update applies a partial status/notes update as the owning doctor
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.careUsecase.UpdateAppointment(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, entity.ErrNotOwner):
			response.Forbidden(w, "Appointment does not belong to you")
		case errors.Is(err, entity.ErrInvalidStatus):
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		case errors.Is(err, entity.ErrTerminalStatus):
			response.Error(w, http.StatusConflict, "Appointment is already completed or cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}
