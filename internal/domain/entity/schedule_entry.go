package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownDay       = errors.New("unknown day name")
	ErrInvalidTimeOfDay = errors.New("invalid time, use HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// Weekdays lists the recognized day names in week order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayIndex = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3,
	"Friday": 4, "Saturday": 5, "Sunday": 6,
}

// ScheduleEntry is a doctor's declared open hours for one weekday. A
// doctor has at most one entry per day; absence of a day means the doctor
// is unavailable that day.
type ScheduleEntry struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_doctor_day" json:"doctor_id"`
	Day       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_schedule_doctor_day" json:"day"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (ScheduleEntry) TableName() string {
	return "doctor_schedule_entries"
}

// Validate checks the day name, the HH:MM time formats and the time range.
func (e *ScheduleEntry) Validate() error {
	if _, ok := weekdayIndex[e.Day]; !ok {
		return ErrUnknownDay
	}
	if _, err := time.Parse("15:04", e.StartTime); err != nil {
		return ErrInvalidTimeOfDay
	}
	if _, err := time.Parse("15:04", e.EndTime); err != nil {
		return ErrInvalidTimeOfDay
	}
	// HH:MM compares correctly as a string once the format is known valid.
	if e.StartTime >= e.EndTime {
		return ErrInvalidTimeRange
	}
	return nil
}

// NormalizeSchedule validates entries and collapses duplicate days,
// keeping the last entry supplied for each day. The result is ordered
// Monday through Sunday.
func NormalizeSchedule(entries []ScheduleEntry) ([]ScheduleEntry, error) {
	byDay := make(map[string]ScheduleEntry, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		byDay[e.Day] = e
	}

	normalized := make([]ScheduleEntry, 0, len(byDay))
	for _, day := range Weekdays {
		if e, ok := byDay[day]; ok {
			normalized = append(normalized, e)
		}
	}
	return normalized, nil
}

// ScheduleFor returns the entry for the given day, nil when the doctor is
// unavailable that day. Pure lookup, no mutation.
func ScheduleFor(entries []ScheduleEntry, day string) *ScheduleEntry {
	for i := range entries {
		if entries[i].Day == day {
			return &entries[i]
		}
	}
	return nil
}
