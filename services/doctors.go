package services

import (
	"context"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

func (cl *Client) DoctorByID(ctx context.Context, token, id string) (models.Doctor, error) {
	var doctor models.Doctor
	err := cl.do(ctx, "GET", "/doctors/"+id, token, nil, &doctor)
	return doctor, err
}

func (cl *Client) DoctorProfile(ctx context.Context, token string) (models.User, error) {
	var profile models.User
	err := cl.do(ctx, "GET", "/doctors/profile/me", token, nil, &profile)
	return profile, err
}

func (cl *Client) UpdateDoctorProfile(ctx context.Context, token string, update models.ProfileUpdate) error {
	return cl.do(ctx, "PUT", "/doctors/profile/me", token, update, nil)
}

// DeleteDoctorProfile removes the doctor's own account.
func (cl *Client) DeleteDoctorProfile(ctx context.Context, token string) error {
	return cl.do(ctx, "DELETE", "/doctors/profile/me", token, nil, nil)
}

// DoctorAppointments lists the appointments booked with the calling doctor.
func (cl *Client) DoctorAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := cl.do(ctx, "GET", "/doctors/appointments/doctor", token, nil, &appointments)
	return appointments, err
}

func (cl *Client) AcceptAppointment(ctx context.Context, token, id string) error {
	return cl.do(ctx, "PUT", "/doctors/appointments/"+id+"/accept", token, struct{}{}, nil)
}

func (cl *Client) RejectAppointment(ctx context.Context, token, id string) error {
	return cl.do(ctx, "PUT", "/doctors/appointments/"+id+"/reject", token, struct{}{}, nil)
}
