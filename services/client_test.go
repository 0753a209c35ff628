package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

func TestDoDecodesEnvelopeData(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doctors/approved" {
			t.Errorf("path = %q, want /doctors/approved", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"_id":"d1","name":"Alice Hart","specialization":"Cardiology"}]}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	var doctors []models.Doctor
	if err := cl.do(context.Background(), "GET", "/doctors/approved", "tok", nil, &doctors); err != nil {
		t.Fatalf("do() error: %v", err)
	}

	if len(doctors) != 1 || doctors[0].ID != "d1" || doctors[0].Name != "Alice Hart" {
		t.Errorf("decoded %+v, want one doctor d1/Alice Hart", doctors)
	}
}

func TestDoFallsBackToDoctorsKey(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"doctors":[{"_id":"d2","name":"Bob Stone"}]}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	var doctors []models.Doctor
	if err := cl.do(context.Background(), "GET", "/admin/doctors", "tok", nil, &doctors); err != nil {
		t.Fatalf("do() error: %v", err)
	}
	if len(doctors) != 1 || doctors[0].ID != "d2" {
		t.Errorf("decoded %+v, want one doctor d2", doctors)
	}
}

func TestBusinessErrorShownVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Doctor is not available at that time"}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	err := cl.do(context.Background(), "POST", "/appointments", "tok", map[string]string{"doctorId": "d1"}, nil)
	if err == nil {
		t.Fatal("do() = nil, want business error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "Doctor is not available at that time" {
		t.Errorf("Message = %q, backend message must pass through untouched", apiErr.Message)
	}
}

func TestUpstream401BecomesErrUnauthorized(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"jwt expired"}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	err := cl.do(context.Background(), "GET", "/patients/profile/me", "stale", nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestTransportFailureTripsBreaker(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // nothing is listening any more

	cl := NewClient(backend.URL)
	for i := 0; i < 3; i++ {
		if err := cl.do(context.Background(), "GET", "/doctors/approved", "", nil, nil); err == nil {
			t.Fatal("do() = nil against a closed backend")
		}
	}

	// Fourth call fails fast in the breaker without touching the network.
	err := cl.do(context.Background(), "GET", "/doctors/approved", "", nil, nil)
	if err == nil {
		t.Fatal("do() = nil with an open breaker")
	}
}

func TestStatusErrorsDoNotTripBreaker(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	for i := 0; i < 10; i++ {
		err := cl.do(context.Background(), "POST", "/appointments", "tok", nil, nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("call %d: error type = %T (%v), breaker must stay closed on 4xx", i, err, err)
		}
	}
}

func TestLoginReturnsTokenRoleAndProfile(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("%s %s, want POST /login", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"token":"jwt123","role":"patient","data":{"_id":"u1","name":"Jane Doe","email":"jane@example.test"}}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	token, role, user, err := cl.Login(context.Background(), "jane@example.test", "hunter22")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token != "jwt123" || role != "patient" {
		t.Errorf("token/role = %q/%q, want jwt123/patient", token, role)
	}
	if user.ID != "u1" || user.Name != "Jane Doe" {
		t.Errorf("user = %+v, want u1/Jane Doe", user)
	}
}

func TestRegisterDefaultsMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer backend.Close()

	cl := NewClient(backend.URL)
	msg, err := cl.Register(context.Background(), models.RegisterRequest{Name: "Jane", Email: "jane@example.test", Password: "x", Role: "patient"})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if msg != "Registration successful" {
		t.Errorf("message = %q, want default", msg)
	}
}
