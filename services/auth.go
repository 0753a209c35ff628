package services

import (
	"context"
	"encoding/json"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

// Login exchanges credentials for a bearer token, the account's role and its
// profile. The token is opaque to the portal.
func (cl *Client) Login(ctx context.Context, email, password string) (token, role string, user models.User, err error) {
	envelope, err := cl.doEnvelope(ctx, "POST", "/login", "", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", "", models.User{}, err
	}

	if len(envelope.Data) > 0 {
		// Profile is a nicety; a backend that omits it still logs in.
		json.Unmarshal(envelope.Data, &user)
	}
	return envelope.Token, envelope.Role, user, nil
}

// Register creates an account. The returned message comes from the backend
// and is shown as-is.
func (cl *Client) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	envelope, err := cl.doEnvelope(ctx, "POST", "/register", "", req)
	if err != nil {
		return "", err
	}
	msg := envelope.Message
	if msg == "" {
		msg = "Registration successful"
	}
	return msg, nil
}
