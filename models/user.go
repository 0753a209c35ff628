package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User is the profile shape the backend returns for any account. Doctor and
// patient specific fields are simply absent for the other role.
type User struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	DateOfBirth    string    `json:"dob,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	ApprovalStatus string    `json:"approvalStatus,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries role-conditional fields: specialization is only
// meaningful for doctors, gender for patients. The backend ignores the rest.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Gender         string `json:"gender,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDoctor || role == RolePatient
}
