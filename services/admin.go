package services

import (
	"context"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

func (cl *Client) AdminPatients(ctx context.Context, token string) ([]models.Patient, error) {
	var patients []models.Patient
	err := cl.do(ctx, "GET", "/admin/patients", token, nil, &patients)
	return patients, err
}

func (cl *Client) AdminDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := cl.do(ctx, "GET", "/admin/doctors", token, nil, &doctors)
	return doctors, err
}

// ApprovedDoctors is the public directory: only admin-approved doctors may
// accept bookings, so this is what the find-doctors page shows.
func (cl *Client) ApprovedDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := cl.do(ctx, "GET", "/admin/doctors/approved", token, nil, &doctors)
	return doctors, err
}

func (cl *Client) ApproveDoctor(ctx context.Context, token, id string) error {
	return cl.do(ctx, "PUT", "/admin/doctors/"+id+"/approve", token, struct{}{}, nil)
}

func (cl *Client) DeleteDoctor(ctx context.Context, token, id string) error {
	return cl.do(ctx, "DELETE", "/admin/doctors/"+id, token, nil, nil)
}

// DeletePatient uses the action-style endpoint the backend exposes for admin
// patient management.
func (cl *Client) DeletePatient(ctx context.Context, token, id string) error {
	body := map[string]string{"action": "delete"}
	return cl.do(ctx, "POST", "/admin/patients/"+id, token, body, nil)
}
