package dto

type HospitalResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Specialties   []string `json:"specialties"`
	Rating        float64  `json:"rating"`
	BedsAvailable int      `json:"beds_available"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
