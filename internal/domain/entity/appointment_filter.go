package entity

import "strings"

// AppointmentFilter is a domain-level filter for a doctor's appointment
// list. Filters are applied in memory after the fetch: Status is an exact
// match, Query matches case-insensitively against the patient name, the
// raw date string, or the reason.
type AppointmentFilter struct {
	Status string
	Query  string
}

// Matches reports whether the appointment passes the filter.
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.Status != "" && string(a.Status) != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(a.Patient.FullName), q) ||
		strings.Contains(strings.ToLower(a.AppointmentDate), q) ||
		strings.Contains(strings.ToLower(a.Reason), q)
}
