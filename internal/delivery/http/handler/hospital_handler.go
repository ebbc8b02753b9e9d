package handler

import (
	"net/http"

	"healthcare-booking/internal/usecase"
	"healthcare-booking/pkg/response"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase) *HospitalHandler {
	return &HospitalHandler{hospitalUsecase: hospitalUsecase}
}

// List returns the hospital directory
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}
