package services

import (
	"context"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

func (cl *Client) PatientProfile(ctx context.Context, token string) (models.Patient, error) {
	var profile models.Patient
	err := cl.do(ctx, "GET", "/patients/profile/me", token, nil, &profile)
	return profile, err
}

func (cl *Client) UpdatePatientProfile(ctx context.Context, token string, update models.ProfileUpdate) error {
	return cl.do(ctx, "PUT", "/patients/profile/me", token, update, nil)
}

// DeletePatientAccount removes the calling patient's account entirely.
func (cl *Client) DeletePatientAccount(ctx context.Context, token string) error {
	return cl.do(ctx, "DELETE", "/patients/account", token, nil, nil)
}
