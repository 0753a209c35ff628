package services

import (
	"context"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

// CreateAppointment books an appointment. Validation already happened in the
// form handler, but the backend re-validates and its message wins.
func (cl *Client) CreateAppointment(ctx context.Context, token string, form models.BookingForm) (string, error) {
	envelope, err := cl.doEnvelope(ctx, "POST", "/appointments", token, form)
	if err != nil {
		return "", err
	}
	msg := envelope.Message
	if msg == "" {
		msg = "Appointment booked successfully!"
	}
	return msg, nil
}

func (cl *Client) CancelAppointment(ctx context.Context, token, id string) error {
	return cl.do(ctx, "PUT", "/appointments/"+id+"/cancel", token, struct{}{}, nil)
}

func (cl *Client) DeleteAppointment(ctx context.Context, token, id string) error {
	return cl.do(ctx, "DELETE", "/appointments/"+id, token, nil, nil)
}

// UpdateAppointmentStatus is the generic transition endpoint; the dashboards
// use it for "completed". Accept and reject have their own doctor-scoped
// endpoints.
func (cl *Client) UpdateAppointmentStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	return cl.do(ctx, "PUT", "/appointments/"+id+"/status", token, body, nil)
}

// PatientAppointments lists the calling patient's own appointments.
func (cl *Client) PatientAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := cl.do(ctx, "GET", "/appointments/patient", token, nil, &appointments)
	return appointments, err
}

// AllAppointments lists every appointment in the system (admin only).
func (cl *Client) AllAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := cl.do(ctx, "GET", "/appointments/all", token, nil, &appointments)
	return appointments, err
}
