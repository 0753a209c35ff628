package models

import "encoding/json"

// Response is the envelope every backend endpoint answers with. Data is kept
// raw so each caller can decode it into its own type. The login endpoint puts
// token and role at the top level; the admin doctor listing uses a "doctors"
// key instead of "data" on some deployments, so both are carried.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Token   string          `json:"token,omitempty"`
	Role    string          `json:"role,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Doctors json.RawMessage `json:"doctors,omitempty"`
}

// ErrorMessage returns whichever of the two error-bearing fields the backend
// chose to populate.
func (r *Response) ErrorMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
