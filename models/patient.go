package models

import "time"

type Patient struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"dob,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// ProfileUpdate is the PUT body for both profile-edit pages. Zero-value
// fields are omitted so the backend only touches what the form submitted.
type ProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Gender         string `json:"gender,omitempty"`
	DateOfBirth    string `json:"dob,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
}
