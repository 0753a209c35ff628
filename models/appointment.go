package models

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// AppointmentParty is the populated doctor/patient reference the backend
// embeds in appointment listings.
type AppointmentParty struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type Appointment struct {
	ID        string            `json:"_id"`
	Doctor    *AppointmentParty `json:"doctor,omitempty"`
	Patient   *AppointmentParty `json:"patient,omitempty"`
	Date      string            `json:"date"`
	Time      string            `json:"time,omitempty"`
	Purpose   string            `json:"purpose,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt,omitempty"`
}

// CanCancel reports whether the patient may still cancel.
func (a Appointment) CanCancel() bool {
	return a.Status == StatusPending || a.Status == StatusAccepted
}

// CanDelete reports whether the appointment is in a terminal state and may be
// removed from the list.
func (a Appointment) CanDelete() bool {
	return a.Status == StatusCancelled || a.Status == StatusRejected || a.Status == StatusCompleted
}

// DisplayDate renders the backend's date value (RFC 3339 or plain date) for
// the tables. Unparseable values pass through untouched.
func (a Appointment) DisplayDate() string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return a.Date
}

func FilterAppointmentsByStatus(appointments []Appointment, status string) []Appointment {
	if status == "" || status == "all" {
		return appointments
	}
	filtered := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// BookingForm is the appointment booking submission. Field names match the
// backend's create-appointment body.
type BookingForm struct {
	DoctorID string `json:"doctorId"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Purpose  string `json:"purpose"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Validate applies the advisory client-side checks before the form is sent
// upstream. The backend remains the authority and its own validation message
// is shown verbatim even when it duplicates one of these.
func (f *BookingForm) Validate(now time.Time) error {
	if f.FullName == "" || f.Phone == "" || f.Purpose == "" || f.Date == "" || f.Time == "" {
		return errors.New("All required fields must be filled")
	}

	if !phonePattern.MatchString(f.Phone) {
		return errors.New("Phone number must be 10 digits")
	}

	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return errors.New("Invalid appointment date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return errors.New("Appointment date must be today or in the future")
	}

	parts := strings.SplitN(f.Time, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts) != 2 {
		return errors.New("Invalid appointment time")
	}
	if hour < 8 || hour >= 20 {
		return errors.New("Appointments can only be scheduled between 8 AM and 8 PM")
	}

	return nil
}
