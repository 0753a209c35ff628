package models

import (
	"strings"
	"time"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Doctor is a directory entry: the subset of a doctor profile used for
// search, filtering and booking selection.
type Doctor struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	ApprovalStatus string    `json:"approvalStatus,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// FilterDoctors narrows the directory by a free-text search over name and
// email and by a specialization substring. Both matches are case-insensitive.
// Empty filters return the input unchanged.
func FilterDoctors(doctors []Doctor, search, specialization string) []Doctor {
	if search == "" && specialization == "" {
		return doctors
	}

	search = strings.ToLower(search)
	specialization = strings.ToLower(specialization)

	filtered := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Email), search) {
			continue
		}
		if specialization != "" &&
			!strings.Contains(strings.ToLower(d.Specialization), specialization) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// FilterDoctorsByApproval keeps entries matching the given approval status.
// "all" (or empty) returns the input unchanged. Entries with no status are
// treated as pending, matching how the backend seeds new doctors.
func FilterDoctorsByApproval(doctors []Doctor, status string) []Doctor {
	if status == "" || status == "all" {
		return doctors
	}
	filtered := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		s := d.ApprovalStatus
		if s == "" {
			s = ApprovalPending
		}
		if s == status {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
